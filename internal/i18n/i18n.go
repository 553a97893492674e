// Package i18n holds the UI dictionaries. A Translator is created once at
// startup and passed to whatever renders text.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when nothing else matches; every key exists in it.
const DefaultLanguage = "en"

// ErrUnsupportedLanguage is returned by SetLanguage for unknown tags.
var ErrUnsupportedLanguage = errors.New("i18n: unsupported language")

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator looks up UI strings in the active language.
type Translator struct {
	lang  string
	dicts map[string]map[string]string
}

// New loads the embedded dictionaries and activates DefaultLanguage.
func New() (*Translator, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}
	dicts := make(map[string]map[string]string, len(entries))
	for _, e := range entries {
		name := e.Name()
		data, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		dict := map[string]string{}
		if err := yaml.Unmarshal(data, &dict); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}
		dicts[strings.TrimSuffix(name, path.Ext(name))] = dict
	}
	if _, ok := dicts[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("i18n: missing %s dictionary", DefaultLanguage)
	}
	return &Translator{lang: DefaultLanguage, dicts: dicts}, nil
}

// Languages lists the available language codes, sorted.
func (t *Translator) Languages() []string {
	out := make([]string, 0, len(t.dicts))
	for k := range t.dicts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Language returns the active language code.
func (t *Translator) Language() string { return t.lang }

// Normalize maps a BCP 47 tag such as "en-US" to a supported code.
func (t *Translator) Normalize(tag string) (string, bool) {
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return "", false
	}
	base, _ := parsed.Base()
	code := base.String()
	if _, ok := t.dicts[code]; !ok {
		return "", false
	}
	return code, true
}

// SetLanguage switches the active language. Unsupported tags leave it
// unchanged.
func (t *Translator) SetLanguage(tag string) error {
	code, ok := t.Normalize(tag)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}
	t.lang = code
	return nil
}

// T returns the string for key in the active language, falling back to
// English and finally to the key itself.
func (t *Translator) T(key string) string {
	if s, ok := t.dicts[t.lang][key]; ok && s != "" {
		return s
	}
	if s, ok := t.dicts[DefaultLanguage][key]; ok && s != "" {
		return s
	}
	return key
}

// Tf formats the string for key with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}
