package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultDelayMS is the simulated generation latency in milliseconds
const DefaultDelayMS = 2000

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings      `yaml:"key_mappings"`
	ColorScheme ColorScheme      `yaml:"theme"`
	Generation  GenerationConfig `yaml:"generation"`
}

// GenerationConfig controls the simulated generation step
type GenerationConfig struct {
	// DelayMS is a pointer so an explicit 0 can be told apart from a missing key
	DelayMS *int `yaml:"delay_ms"`
}

// Delay returns the configured latency, never negative
func (g GenerationConfig) Delay() time.Duration {
	if g.DelayMS == nil {
		return DefaultDelayMS * time.Millisecond
	}
	if *g.DelayMS < 0 {
		return 0
	}
	return time.Duration(*g.DelayMS) * time.Millisecond
}

// Default returns the built-in configuration
func Default() *Config {
	delay := DefaultDelayMS
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
		Generation:  GenerationConfig{DelayMS: &delay},
	}
}

// loadThemeFile loads and merges theme from SAZON_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	loadDotEnv()

	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		applyEnvOverrides(config)
		return config, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path
// Returns default config if the file doesn't exist
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		applyEnvOverrides(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults, then let the theme file win
	config.applyDefaults()
	loadThemeFile(&config)
	applyEnvOverrides(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "sazon", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "sazon", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Generation.DelayMS == nil {
		delay := DefaultDelayMS
		c.Generation.DelayMS = &delay
	}
}
