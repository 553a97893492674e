package theme

// Font is a selectable UI typeface.
type Font struct {
	Name   string
	Value  string
	Family string
	Link   string // stylesheet URL used by the web build
}

var fonts = []Font{
	{Name: "Inter", Value: "inter", Family: "Inter, sans-serif", Link: "https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap"},
	{Name: "Roboto", Value: "roboto", Family: "Roboto, sans-serif", Link: "https://fonts.googleapis.com/css2?family=Roboto:wght@400;500;700&display=swap"},
	{Name: "Lato", Value: "lato", Family: "Lato, sans-serif", Link: "https://fonts.googleapis.com/css2?family=Lato:wght@400;700&display=swap"},
	{Name: "Montserrat", Value: "montserrat", Family: "Montserrat, sans-serif", Link: "https://fonts.googleapis.com/css2?family=Montserrat:wght@400;600;700&display=swap"},
	{Name: "Oswald", Value: "oswald", Family: "Oswald, sans-serif", Link: "https://fonts.googleapis.com/css2?family=Oswald:wght@400;600;700&display=swap"},
}

// Fonts returns a copy of the font table.
func Fonts() []Font {
	out := make([]Font, len(fonts))
	copy(out, fonts)
	return out
}

// FindFont returns the font with the given value, falling back to the first
// entry.
func FindFont(value string) Font {
	if f, ok := LookupFont(value); ok {
		return f
	}
	return fonts[0]
}

// LookupFont reports whether value names a known font.
func LookupFont(value string) (Font, bool) {
	for _, f := range fonts {
		if f.Value == value {
			return f, true
		}
	}
	return Font{}, false
}
