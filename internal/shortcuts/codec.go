package shortcuts

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

var (
	schemaOnce   sync.Once
	schemaLoader gojsonschema.JSONLoader
)

func listSchema() gojsonschema.JSONLoader {
	schemaOnce.Do(func() {
		schemaLoader = gojsonschema.NewGoLoader(map[string]any{
			"$schema": "http://json-schema.org/draft-07/schema#",
			"type":    "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"url"},
				"properties": map[string]any{
					"url": map[string]any{"type": "string", "minLength": 1},
				},
			},
		})
	})
	return schemaLoader
}

// Decode parses the stored JSON array form, e.g. `[{"url":"https://go.dev"}]`.
// Entries beyond MaxShortcuts are dropped.
func Decode(data []byte) ([]Shortcut, error) {
	result, err := gojsonschema.Validate(listSchema(), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("shortcuts: decode: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, fmt.Errorf("shortcuts: decode: %s", strings.Join(issues, "; "))
	}

	var items []Shortcut
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("shortcuts: decode: %w", err)
	}
	if len(items) > MaxShortcuts {
		items = items[:MaxShortcuts]
	}
	return items, nil
}

// Encode renders items in the stored JSON array form.
func Encode(items []Shortcut) ([]byte, error) {
	if items == nil {
		items = []Shortcut{}
	}
	return json.Marshal(items)
}
