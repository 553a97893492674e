package prefs

import (
	"fmt"
	"strconv"

	"github.com/iburimskiy/purpletab/internal/i18n"
	"github.com/iburimskiy/purpletab/internal/shortcuts"
	"gopkg.in/yaml.v3"
)

// Export renders p as a YAML document.
func Export(p Preferences) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("prefs: export: %w", err)
	}
	return data, nil
}

// Import parses a YAML document produced by Export. Fields that are absent
// keep their defaults; any invalid field rejects the whole document.
func Import(data []byte, tr *i18n.Translator) (Preferences, error) {
	var raw struct {
		LineColor       *string              `yaml:"lineColor"`
		BackgroundType  *string              `yaml:"backgroundType"`
		BackgroundColor *string              `yaml:"backgroundColor"`
		Font            *string              `yaml:"font"`
		CursorReaction  *bool                `yaml:"cursorReaction"`
		Language        *string              `yaml:"language"`
		Shortcuts       []shortcuts.Shortcut `yaml:"shortcuts"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Preferences{}, fmt.Errorf("prefs: import: %w", err)
	}

	p := Defaults()
	fields := []struct {
		key string
		val *string
	}{
		{KeyLineColor, raw.LineColor},
		{KeyBackgroundType, raw.BackgroundType},
		{KeyBackgroundColor, raw.BackgroundColor},
		{KeyFont, raw.Font},
		{KeyLanguage, raw.Language},
	}
	for _, f := range fields {
		if f.val == nil {
			continue
		}
		if err := p.Set(f.key, *f.val, tr); err != nil {
			return Preferences{}, fmt.Errorf("prefs: import: %w", err)
		}
	}
	if raw.CursorReaction != nil {
		if err := p.Set(KeyCursorReaction, strconv.FormatBool(*raw.CursorReaction), tr); err != nil {
			return Preferences{}, fmt.Errorf("prefs: import: %w", err)
		}
	}
	if raw.Shortcuts != nil {
		list := shortcuts.List{}
		for _, s := range raw.Shortcuts {
			if _, err := list.Add(s.URL); err != nil {
				return Preferences{}, fmt.Errorf("prefs: import: %w", err)
			}
		}
		p.Shortcuts = list.Items()
	}
	return p, nil
}
