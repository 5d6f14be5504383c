package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(".", "notes.db"), cfg.Store.Path)
	assert.Equal(t, filepath.Join(".", "queue.db"), cfg.Queue.Path)
	assert.Equal(t, filepath.Join(".", "vault.salt"), cfg.Vault.SaltPath)
	assert.Equal(t, 15*time.Second, cfg.Sync.DrainInterval)
	assert.Equal(t, 5, cfg.Sync.MaxAttempts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Network.Offline)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notekeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir: /var/lib/notekeeper
sync:
  drain_interval: 5s
  max_attempts: 2
network:
  offline: true
log:
  level: debug
  format: json
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/notekeeper", cfg.DataDir)
	assert.Equal(t, "/var/lib/notekeeper/notes.db", cfg.Store.Path)
	assert.Equal(t, 5*time.Second, cfg.Sync.DrainInterval)
	assert.Equal(t, 2, cfg.Sync.MaxAttempts)
	assert.True(t, cfg.Network.Offline)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("NOTEKEEPER_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notekeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}
