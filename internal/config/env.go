package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// EnvThemeFile points at a YAML file whose theme section is merged last
	EnvThemeFile = "SAZON_THEME_FILE"

	// EnvDelayMS overrides generation.delay_ms
	EnvDelayMS = "SAZON_DELAY_MS"
)

// loadDotEnv loads a .env file from the working directory if it exists.
// Variables already set in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
}

// applyEnvOverrides applies SAZON_* environment variables on top of the file config
func applyEnvOverrides(config *Config) {
	raw := os.Getenv(EnvDelayMS)
	if raw == "" {
		return
	}

	ms, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("ignoring invalid delay override", "env", EnvDelayMS, "value", raw)
		return
	}
	config.Generation.DelayMS = &ms
}
