package theme

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for strings that are not #RGB or #RRGGBB.
var ErrInvalidColor = errors.New("theme: invalid hex color")

// ParseHex parses "#RRGGBB" or "#RGB" (case-insensitive) into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := parse(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' || !isHexDigits(s[1:]) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// isHexDigits keeps out what fmt.Sscanf would otherwise tolerate, such as
// signs and spaces.
func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// IsHex reports whether s is a strict #RRGGBB colour, the form stored in
// preferences.
func IsHex(s string) bool {
	if len(s) != 7 {
		return false
	}
	_, err := parse(s)
	return err == nil
}

// FormatHex renders c as lowercase #rrggbb.
func FormatHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}.Hex()
}

type namedColor struct {
	hex  string
	name string
	c    colorful.Color
}

var palette = buildPalette([][2]string{
	{"#ff0000", "Red"},
	{"#dc143c", "Crimson"},
	{"#b22222", "Firebrick"},
	{"#ffa500", "Orange"},
	{"#ff8c00", "Dark Orange"},
	{"#ff4500", "Orange Red"},
	{"#ffff00", "Yellow"},
	{"#ffd700", "Gold"},
	{"#008000", "Green"},
	{"#00ff00", "Lime"},
	{"#228b22", "Forest Green"},
	{"#00ffff", "Aqua"},
	{"#00ced1", "Dark Turquoise"},
	{"#0000ff", "Blue"},
	{"#00008b", "Dark Blue"},
	{"#4169e1", "Royal Blue"},
	{"#800080", "Purple"},
	{"#9400d3", "Dark Violet"},
	{"#ff00ff", "Fuchsia"},
	{"#ee82ee", "Violet"},
	{"#ffc0cb", "Pink"},
	{"#ff1493", "Deep Pink"},
	{"#ffffff", "White"},
	{"#808080", "Gray"},
	{"#000000", "Black"},
})

func buildPalette(entries [][2]string) []namedColor {
	out := make([]namedColor, 0, len(entries))
	for _, e := range entries {
		c, err := parse(e[0])
		if err != nil {
			panic(err)
		}
		out = append(out, namedColor{hex: e[0], name: e[1], c: c})
	}
	return out
}

// ColorName returns a human name for hex: the exact palette entry when there
// is one, otherwise the nearest entry by Euclidean distance in RGB. Unparseable
// input yields "".
func ColorName(hex string) string {
	c, err := parse(hex)
	if err != nil {
		return ""
	}
	lower := c.Hex()
	best, bestDist := "", math.Inf(1)
	for _, p := range palette {
		if p.hex == lower {
			return p.name
		}
		if d := c.DistanceRgb(p.c); d < bestDist {
			best, bestDist = p.name, d
		}
	}
	return best
}
