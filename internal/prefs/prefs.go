// Package prefs loads and saves the page preferences.
//
// Preferences are read once at startup and written when the user saves
// settings. Bad stored values never surface as errors: they are dropped and
// the default takes their place.
package prefs

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/iburimskiy/purpletab/internal/i18n"
	"github.com/iburimskiy/purpletab/internal/shortcuts"
	"github.com/iburimskiy/purpletab/internal/theme"
	"github.com/iburimskiy/purpletab/internal/waves"
)

// BackgroundType selects between the animated waves and a flat colour.
type BackgroundType string

const (
	BackgroundDynamic BackgroundType = "dynamic"
	BackgroundSolid   BackgroundType = "solid"
)

// Stored keys.
const (
	KeyLineColor       = "lineColor"
	KeyBackgroundType  = "backgroundType"
	KeyBackgroundColor = "backgroundColor"
	KeyFont            = "font"
	KeyCursorReaction  = "cursorReaction"
	KeyLanguage        = "language"
	KeyShortcuts       = "shortcuts"
)

// Keys lists every stored key in display order.
var Keys = []string{
	KeyLineColor, KeyBackgroundType, KeyBackgroundColor, KeyFont,
	KeyCursorReaction, KeyLanguage, KeyShortcuts,
}

// ErrInvalidValue is returned by Set for values that fail validation.
var ErrInvalidValue = errors.New("prefs: invalid value")

// ErrUnknownKey is returned by Set for keys outside Keys.
var ErrUnknownKey = errors.New("prefs: unknown key")

// Preferences is the full set of user settings.
type Preferences struct {
	LineColor       string               `yaml:"lineColor"`
	BackgroundType  BackgroundType       `yaml:"backgroundType"`
	BackgroundColor string               `yaml:"backgroundColor"`
	Font            string               `yaml:"font"`
	CursorReaction  bool                 `yaml:"cursorReaction"`
	Language        string               `yaml:"language"`
	Shortcuts       []shortcuts.Shortcut `yaml:"shortcuts"`
}

// Defaults returns the settings used when nothing is stored.
func Defaults() Preferences {
	return Preferences{
		LineColor:       "#9400D3",
		BackgroundType:  BackgroundDynamic,
		BackgroundColor: "#000000",
		Font:            "inter",
		CursorReaction:  true,
		Language:        i18n.DefaultLanguage,
		Shortcuts:       []shortcuts.Shortcut{},
	}
}

// WaveConfig derives the background renderer configuration.
func (p Preferences) WaveConfig() waves.Config {
	return waves.Config{
		LineColor:      p.LineColor,
		IsVisible:      p.BackgroundType == BackgroundDynamic,
		CursorReaction: p.CursorReaction,
	}
}

// Loader reads and writes Preferences through a Store.
type Loader struct {
	store Store
	tr    *i18n.Translator
}

// NewLoader returns a loader over store. tr validates language codes.
func NewLoader(store Store, tr *i18n.Translator) *Loader {
	return &Loader{store: store, tr: tr}
}

// Load reads every key, substituting the default for anything missing or
// malformed.
func (l *Loader) Load() Preferences {
	p := Defaults()
	for _, key := range Keys {
		data, ok, err := l.store.Load(key)
		if err != nil {
			log.Printf("[Prefs] %v (using default)", err)
			continue
		}
		if !ok {
			continue
		}
		if err := p.Set(key, string(data), l.tr); err != nil {
			log.Printf("[Prefs] discarding stored %s: %v", key, err)
		}
	}
	return p
}

// Save writes every key in Keys order and stops at the first store error.
// Keys written before the failure stay saved, so a failing store can hold a
// mix of old and new values.
func (l *Loader) Save(p Preferences) error {
	for _, key := range Keys {
		v, err := p.Get(key)
		if err != nil {
			return err
		}
		if err := l.store.Save(key, []byte(v)); err != nil {
			return err
		}
	}
	log.Printf("[Prefs] saved")
	return nil
}

// Get returns the stored string form of key.
func (p Preferences) Get(key string) (string, error) {
	switch key {
	case KeyLineColor:
		return p.LineColor, nil
	case KeyBackgroundType:
		return string(p.BackgroundType), nil
	case KeyBackgroundColor:
		return p.BackgroundColor, nil
	case KeyFont:
		return p.Font, nil
	case KeyCursorReaction:
		return strconv.FormatBool(p.CursorReaction), nil
	case KeyLanguage:
		return p.Language, nil
	case KeyShortcuts:
		data, err := shortcuts.Encode(p.Shortcuts)
		if err != nil {
			return "", fmt.Errorf("prefs: encode shortcuts: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Set validates value and assigns it to key. On error p is unchanged. tr
// resolves language tags.
func (p *Preferences) Set(key, value string, tr *i18n.Translator) error {
	switch key {
	case KeyLineColor, KeyBackgroundColor:
		if !theme.IsHex(value) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		if key == KeyLineColor {
			p.LineColor = value
		} else {
			p.BackgroundColor = value
		}
	case KeyBackgroundType:
		bt := BackgroundType(value)
		if bt != BackgroundDynamic && bt != BackgroundSolid {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		p.BackgroundType = bt
	case KeyFont:
		if _, ok := theme.LookupFont(value); !ok {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		p.Font = value
	case KeyCursorReaction:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		p.CursorReaction = b
	case KeyLanguage:
		code, ok := tr.Normalize(value)
		if !ok {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		p.Language = code
	case KeyShortcuts:
		items, err := shortcuts.Decode([]byte(value))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		p.Shortcuts = items
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}
