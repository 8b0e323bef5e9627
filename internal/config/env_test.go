package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplyEnvOverrides_Delay ensures SAZON_DELAY_MS beats the config file.
func TestApplyEnvOverrides_Delay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generation:\n  delay_ms: 500\n"), 0o644))

	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvDelayMS, "25")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 25*time.Millisecond, cfg.Generation.Delay())
}

// TestApplyEnvOverrides_Invalid ensures garbage in the env is ignored.
// Edge case: the file value survives a non-numeric override.
func TestApplyEnvOverrides_Invalid(t *testing.T) {
	t.Setenv(EnvDelayMS, "soon")

	cfg := Default()
	applyEnvOverrides(cfg)

	assert.Equal(t, DefaultDelayMS*time.Millisecond, cfg.Generation.Delay())
}

// TestLoad_DotEnv ensures a .env file in the working directory is honored.
func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvDelayMS+"=0\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv(EnvDelayMS)
	})

	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvThemeFile, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Generation.Delay())
}
