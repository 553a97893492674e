package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/purpletab/internal/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStore(t *testing.T) *prefs.MemStore {
	t.Helper()
	store := prefs.NewMemStore()
	orig := openStore
	openStore = func() (prefs.Store, error) { return store, nil }
	t.Cleanup(func() { openStore = orig })
	return store
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPrefsSetAndShow(t *testing.T) {
	store := withStore(t)

	_, err := run(t, "prefs", "set", "lineColor", "#00FF00")
	require.NoError(t, err)
	data, ok, err := store.Load(prefs.KeyLineColor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "#00FF00", string(data))

	out, err := run(t, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "#00FF00")
	assert.Contains(t, out, "Lime")
	assert.Contains(t, out, "0 saved")
}

func TestPrefsSetRejectsInvalid(t *testing.T) {
	store := withStore(t)
	_, err := run(t, "prefs", "set", "backgroundType", "video")
	assert.ErrorIs(t, err, prefs.ErrInvalidValue)
	_, ok, _ := store.Load(prefs.KeyBackgroundType)
	assert.False(t, ok)
}

func TestPrefsResetAndExportImport(t *testing.T) {
	withStore(t)
	_, err := run(t, "prefs", "set", "font", "oswald")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "prefs.yaml")
	_, err = run(t, "prefs", "export", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "font: oswald")

	_, err = run(t, "prefs", "reset")
	require.NoError(t, err)
	out, err := run(t, "prefs", "export")
	require.NoError(t, err)
	assert.Contains(t, out, "font: inter")

	_, err = run(t, "prefs", "import", path)
	require.NoError(t, err)
	out, err = run(t, "prefs", "export")
	require.NoError(t, err)
	assert.Contains(t, out, "font: oswald")
}

func TestShortcutsCommands(t *testing.T) {
	withStore(t)

	out, err := run(t, "shortcuts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No shortcuts saved")

	_, err = run(t, "shortcuts", "add", "go.dev")
	require.NoError(t, err)
	_, err = run(t, "shortcuts", "add", "pkg.go.dev")
	require.NoError(t, err)
	_, err = run(t, "shortcuts", "add", "go.dev")
	assert.Error(t, err)

	out, err = run(t, "shortcuts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "https://go.dev")
	assert.Contains(t, out, "https://pkg.go.dev")

	_, err = run(t, "shortcuts", "remove", "1")
	require.NoError(t, err)
	out, err = run(t, "shortcuts", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "https://go.dev\n")
	assert.Contains(t, out, "https://pkg.go.dev")

	_, err = run(t, "shortcuts", "remove", "x")
	assert.Error(t, err)
	_, err = run(t, "shortcuts", "remove", "9")
	assert.Error(t, err)
}

func TestServeRejectsMissingDir(t *testing.T) {
	_, err := run(t, "serve", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
