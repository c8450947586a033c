package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is read from the working directory when present.
var dotEnvFile = ".env"

// parseEnv overlays Config with LEDGER_* variables. Values from the process
// environment win over values from dotEnvFile; unset variables keep the
// current value.
func parseEnv(cfg *Config) {
	environ, err := environment(dotEnvFile)
	if err != nil {
		panic(err)
	}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}

// environment merges the dotenv file (if any) with os.Environ.
func environment(dotenv string) (map[string]string, error) {
	merged := map[string]string{}

	if dotenv != "" {
		vars, err := godotenv.Read(dotenv)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", dotenv, err)
		default:
			for k, v := range vars {
				merged[k] = v
			}
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			merged[k] = v
		}
	}
	return merged, nil
}
