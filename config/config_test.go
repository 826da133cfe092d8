package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a fresh directory so no stray .env file is picked up
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, loaded, err := Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.Equal(t, "8082", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 2.0, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, "SEOAnalyzer/1.0", cfg.UserAgent)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoadPrefersDevelopmentEnvFile(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CHART_TITLE=from-env\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.development"), []byte("CHART_TITLE=from-dev\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("CHART_TITLE") })

	cfg, loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".env.development", loaded)
	assert.Equal(t, "from-dev", cfg.ChartTitle)
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8082", LogFormat: "json", RateLimitRPS: 2, RateLimitBurst: 5}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"zero rate", func(c *Config) { c.RateLimitRPS = 0 }},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t)
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	_, _, err := Load()
	assert.Error(t, err)
}
