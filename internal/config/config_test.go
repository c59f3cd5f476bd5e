package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t) // no config.yaml in scope

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Campaign", cfg.Campaign.Name)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.MaxUploadMB)
	assert.InDelta(t, 2.0, cfg.Server.RatePerSecond, 0.001)
	assert.Equal(t, 4, cfg.Server.RateBurst)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
campaign:
  name: SpringLaunch
export:
  dir: /tmp/reports
server:
  port: 9090
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "SpringLaunch", cfg.Campaign.Name)
	assert.Equal(t, "/tmp/reports", cfg.Export.Dir)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	// Defaults still apply for unset values
	assert.Equal(t, 32, cfg.Server.MaxUploadMB)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := "server:\n  port: 9090\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))
	t.Setenv("CAMPAIGN_SERVER_PORT", "7070")
	t.Setenv("CAMPAIGN_CAMPAIGN_NAME", "EnvCampaign")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "EnvCampaign", cfg.Campaign.Name)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "not-a-level"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
