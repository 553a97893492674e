package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnvMissingFile(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestLoadDotEnvSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PURPLETAB_TEST_VALUE=waves\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PURPLETAB_TEST_VALUE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "waves", os.Getenv("PURPLETAB_TEST_VALUE"))
}

func TestEnvironment(t *testing.T) {
	t.Setenv(EnvVar, "")
	assert.Equal(t, EnvDevelopment, Environment(""))

	t.Setenv(EnvVar, " Production ")
	assert.Equal(t, EnvProduction, Environment(""))
	assert.Equal(t, EnvDevelopment, Environment("development"))

	t.Setenv(EnvVar, "staging")
	assert.Equal(t, EnvDevelopment, Environment(""))
	assert.Equal(t, EnvProduction, Environment("production"))
}
