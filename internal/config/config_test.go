package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  env: prod
  log_level: debug
bybit:
  api_key: k
  api_secret: s
  timeout_seconds: 20
server:
  enabled: true
  addr: ":8088"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "https://api.bybit.com", cfg.Bybit.BaseURL)
	assert.Equal(t, 20, cfg.Bybit.TimeoutSeconds)
	assert.Equal(t, 5000, cfg.Bybit.RecvWindowMS)
	assert.Equal(t, "USDT", cfg.Bybit.SettleCoin)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, ":8088", cfg.Server.Addr)
}

func TestLoad_TestnetDefaultBaseURL(t *testing.T) {
	path := writeConfig(t, `
bybit:
  api_key: k
  api_secret: s
  testnet: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api-testnet.bybit.com", cfg.Bybit.BaseURL)
}

func TestLoad_MissingCredentials(t *testing.T) {
	path := writeConfig(t, `
bybit:
  api_key: k
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "api_secret")
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}
