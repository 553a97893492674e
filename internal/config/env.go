package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvVar selects the runtime environment.
const EnvVar = "PURPLETAB_ENV"

// LoadDotEnv reads variables from the given files (".env" when none are
// named). Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil
		}
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Environment resolves the runtime environment. An explicit override wins
// over PURPLETAB_ENV; anything other than production is development.
func Environment(override string) string {
	v := override
	if v == "" {
		v = os.Getenv(EnvVar)
	}
	if strings.EqualFold(strings.TrimSpace(v), EnvProduction) {
		return EnvProduction
	}
	return EnvDevelopment
}
