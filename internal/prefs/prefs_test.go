package prefs

import (
	"errors"
	"os"
	"testing"

	"github.com/iburimskiy/purpletab/internal/i18n"
	"github.com/iburimskiy/purpletab/internal/shortcuts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.New()
	require.NoError(t, err)
	return tr
}

func TestLoadEmptyStoreGivesDefaults(t *testing.T) {
	p := NewLoader(NewMemStore(), translator(t)).Load()
	assert.Equal(t, Defaults(), p)
}

func TestSaveThenLoad(t *testing.T) {
	store := NewMemStore()
	l := NewLoader(store, translator(t))

	p := Defaults()
	p.LineColor = "#00ff00"
	p.BackgroundType = BackgroundSolid
	p.BackgroundColor = "#101010"
	p.Font = "oswald"
	p.CursorReaction = false
	p.Language = "de"
	p.Shortcuts = []shortcuts.Shortcut{{URL: "https://go.dev"}}
	require.NoError(t, l.Save(p))

	data, ok, err := store.Load(KeyShortcuts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"url":"https://go.dev"}]`, string(data))

	assert.Equal(t, p, l.Load())
}

// failAfter accepts n writes and rejects the rest.
type failAfter struct {
	*MemStore
	n int
}

func (s *failAfter) Save(key string, data []byte) error {
	if s.n == 0 {
		return errors.New("disk full")
	}
	s.n--
	return s.MemStore.Save(key, data)
}

func TestSaveStopsAtFirstStoreError(t *testing.T) {
	store := &failAfter{MemStore: NewMemStore(), n: 2}
	l := NewLoader(store, translator(t))

	p := Defaults()
	p.LineColor = "#00ff00"
	p.BackgroundType = BackgroundSolid
	p.BackgroundColor = "#101010"
	require.Error(t, l.Save(p))

	got := NewLoader(store.MemStore, translator(t)).Load()
	assert.Equal(t, "#00ff00", got.LineColor)
	assert.Equal(t, BackgroundSolid, got.BackgroundType)
	assert.Equal(t, Defaults().BackgroundColor, got.BackgroundColor)
}

func TestMalformedValuesAreDiscarded(t *testing.T) {
	store := NewMemStore()
	bad := map[string]string{
		KeyLineColor:       "purple",
		KeyBackgroundType:  "video",
		KeyBackgroundColor: "#12",
		KeyFont:            "comic-sans",
		KeyCursorReaction:  "maybe",
		KeyLanguage:        "tlh",
		KeyShortcuts:       `[{"url":`,
	}
	for k, v := range bad {
		require.NoError(t, store.Save(k, []byte(v)))
	}
	assert.Equal(t, Defaults(), NewLoader(store, translator(t)).Load())
}

func TestMixedValidAndInvalid(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Save(KeyLineColor, []byte("#abcdef")))
	require.NoError(t, store.Save(KeyShortcuts, []byte(`{"url":"x"}`)))
	require.NoError(t, store.Save(KeyLanguage, []byte("fr-CA")))

	p := NewLoader(store, translator(t)).Load()
	assert.Equal(t, "#abcdef", p.LineColor)
	assert.Equal(t, "fr", p.Language)
	assert.Empty(t, p.Shortcuts)
}

func TestSetRejectsWithoutChange(t *testing.T) {
	tr := translator(t)
	p := Defaults()
	assert.ErrorIs(t, p.Set(KeyLineColor, "#zzzzzz", tr), ErrInvalidValue)
	assert.ErrorIs(t, p.Set("theme", "dark", tr), ErrUnknownKey)
	assert.Equal(t, Defaults(), p)

	require.NoError(t, p.Set(KeyCursorReaction, "false", tr))
	assert.False(t, p.CursorReaction)
}

func TestWaveConfig(t *testing.T) {
	p := Defaults()
	cfg := p.WaveConfig()
	assert.Equal(t, "#9400D3", cfg.LineColor)
	assert.True(t, cfg.IsVisible)
	assert.True(t, cfg.CursorReaction)

	p.BackgroundType = BackgroundSolid
	assert.False(t, p.WaveConfig().IsVisible)
}

func TestExportImport(t *testing.T) {
	tr := translator(t)
	p := Defaults()
	p.Font = "lato"
	p.Shortcuts = []shortcuts.Shortcut{{URL: "https://go.dev"}}

	data, err := Export(p)
	require.NoError(t, err)
	got, err := Import(data, tr)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	partial, err := Import([]byte("font: roboto\n"), tr)
	require.NoError(t, err)
	assert.Equal(t, "roboto", partial.Font)
	assert.Equal(t, Defaults().LineColor, partial.LineColor)

	_, err = Import([]byte("lineColor: red\n"), tr)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestGdataStoreRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	store, err := OpenGdataStore("purpletab_test_prefs")
	require.NoError(t, err)

	_, ok, err := store.Load(KeyFont)
	require.NoError(t, err)
	assert.False(t, ok)

	l := NewLoader(store, translator(t))
	p := Defaults()
	p.Font = "montserrat"
	require.NoError(t, l.Save(p))
	assert.Equal(t, "montserrat", l.Load().Font)
}
