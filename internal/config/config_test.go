package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonDHaskell/acesso/server/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.HTTPAddr())
	assert.Equal(t, "controle_acesso.db", cfg.DBPath)
	assert.True(t, cfg.Seed)
	assert.Equal(t, 1000, cfg.MaxLogLimit)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.GRPCAddr)
	assert.Equal(t, 5, cfg.ShutdownTimeoutSec)
	assert.Zero(t, cfg.StatsIntervalSec, "refresher is opt-in")
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "acesso.yaml", `
port: 8080
db_path: /var/lib/acesso/acesso.db
seed: false
max_log_limit: 200
allowed_origins:
  - http://painel.local
grpc_addr: 127.0.0.1:9090
log_level: debug
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/var/lib/acesso/acesso.db", cfg.DBPath)
	assert.False(t, cfg.Seed)
	assert.Equal(t, 200, cfg.MaxLogLimit)
	assert.Equal(t, []string{"http://painel.local"}, cfg.AllowedOrigins)
	assert.Equal(t, "127.0.0.1:9090", cfg.GRPCAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "acesso.yaml", "port: 8080\n")
	t.Setenv("ACESSO_PORT", "9000")
	t.Setenv("ACESSO_DB_PATH", "/tmp/env.db")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestLoad_EnvEnablesStatsRefresher(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ACESSO_STATS_INTERVAL_SEC", "30")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.StatsIntervalSec)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeFile(t, "acesso.yaml", "port: 70000\n")

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "invalid port")
}

func TestValidate(t *testing.T) {
	cfg := config.Config{Port: 3000, DBPath: "  "}
	assert.Error(t, cfg.Validate())

	cfg = config.Config{Port: 3000, DBPath: "x.db"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.ShutdownTimeoutSec)
}
