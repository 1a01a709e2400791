package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loadDotEnv seeds the process environment from path. Variables already set
// keep their values. A missing file is only an error when it was asked for
// explicitly.
func loadDotEnv(path string, required bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	return fmt.Errorf("error loading env file %q: %w", path, err)
}

// lookupEnvFilePath resolves the .env location before flags are parsed:
// -env-file wins over ENV_FILE, which wins over the default.
func lookupEnvFilePath(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "env-file" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}

	if v := os.Getenv("ENV_FILE"); v != "" {
		return v
	}
	return defaultEnvFile
}
