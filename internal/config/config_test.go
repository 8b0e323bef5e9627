package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "ctrl+g", defaults.Generate)
	assert.Equal(t, "space", defaults.ToggleRestriction)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	// Point at a temp dir that has no config
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvDelayMS, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, 2*time.Second, cfg.Generation.Delay())
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvDelayMS, "")

	configDir := filepath.Join(tempDir, "sazon")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	configContent := `key_mappings:
  quit: "x"
  generate: "ctrl+r"
generation:
  delay_ms: 250
theme:
  preset: monochrome
`
	configPath := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "ctrl+r", cfg.KeyMappings.Generate)
	assert.Equal(t, 250*time.Millisecond, cfg.Generation.Delay())

	// Unspecified values should use defaults
	assert.Equal(t, "tab", cfg.KeyMappings.NextSection)
	assert.Equal(t, "#FFFFFF", cfg.ColorScheme.Accent)
}

func TestGenerationDelay(t *testing.T) {
	zero := 0
	negative := -50
	custom := 10

	tests := []struct {
		name string
		cfg  GenerationConfig
		want time.Duration
	}{
		{"missing uses default", GenerationConfig{}, 2 * time.Second},
		{"explicit zero", GenerationConfig{DelayMS: &zero}, 0},
		{"negative clamps to zero", GenerationConfig{DelayMS: &negative}, 0},
		{"custom", GenerationConfig{DelayMS: &custom}, 10 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Delay())
		})
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key_mappings: [unterminated"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvDelayMS, "")

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:     "x",
			Generate: "ctrl+r",
		},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(tempDir, "sazon", "config.yaml"))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "x", loaded.KeyMappings.Quit)
	assert.Equal(t, "ctrl+r", loaded.KeyMappings.Generate)
	assert.Equal(t, 2*time.Second, loaded.Generation.Delay())
}
