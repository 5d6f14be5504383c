// Package config loads application configuration from a YAML file with
// environment variable overrides (prefix NOTEKEEPER_).
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	// DataDir is the base directory for the note store, the operation
	// queue and the vault salt.
	DataDir string `mapstructure:"data_dir"`

	Store   StoreConfig   `mapstructure:"store"`
	Queue   QueueConfig   `mapstructure:"queue"`
	Sync    SyncConfig    `mapstructure:"sync"`
	Network NetworkConfig `mapstructure:"network"`
	Vault   VaultConfig   `mapstructure:"vault"`
	Log     LogConfig     `mapstructure:"log"`
}

// StoreConfig configures the note store.
type StoreConfig struct {
	// Path to the SQLite database. Defaults to notes.db under DataDir.
	Path string `mapstructure:"path"`
}

// QueueConfig configures the durable operation queue.
type QueueConfig struct {
	// Path to the queue database. Defaults to queue.db under DataDir.
	Path string `mapstructure:"path"`
}

// SyncConfig configures the sync coordinator.
type SyncConfig struct {
	DrainInterval       time.Duration `mapstructure:"drain_interval"`
	MaintenanceInterval time.Duration `mapstructure:"maintenance_interval"`
	BackoffBase         time.Duration `mapstructure:"backoff_base"`
	BackoffCap          time.Duration `mapstructure:"backoff_cap"`
	MaxAttempts         int           `mapstructure:"max_attempts"`
	ForceSyncTimeout    time.Duration `mapstructure:"force_sync_timeout"`
	ForceSyncPoll       time.Duration `mapstructure:"force_sync_poll"`
}

// NetworkConfig configures the network monitor.
type NetworkConfig struct {
	// ProbeAddr is the host:port the probe monitor dials.
	ProbeAddr    string        `mapstructure:"probe_addr"`
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
	// Metered marks the link as metered; sync waits on metered links.
	Metered bool `mapstructure:"metered"`
	// Offline pins the monitor to a disconnected state.
	Offline bool `mapstructure:"offline"`
}

// VaultConfig configures vault note encryption.
type VaultConfig struct {
	// SaltPath is the key derivation salt file. Defaults to vault.salt
	// under DataDir.
	SaltPath string `mapstructure:"salt_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is text or json.
	Format string `mapstructure:"format"`
	// File enables rotated file output when set; empty logs to stderr.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Load reads configuration from path (or the default locations when
// path is empty), applies environment overrides and fills in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", ".")
	v.SetDefault("sync.drain_interval", 15*time.Second)
	v.SetDefault("sync.maintenance_interval", time.Minute)
	v.SetDefault("sync.backoff_base", time.Second)
	v.SetDefault("sync.backoff_cap", 5*time.Minute)
	v.SetDefault("sync.max_attempts", 5)
	v.SetDefault("sync.force_sync_timeout", 30*time.Second)
	v.SetDefault("sync.force_sync_poll", 250*time.Millisecond)
	v.SetDefault("network.probe_addr", "1.1.1.1:443")
	v.SetDefault("network.probe_timeout", 2*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("notekeeper")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/notekeeper")
	}

	v.SetEnvPrefix("NOTEKEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing config file is fine unless one was named explicitly.
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = filepath.Join(cfg.DataDir, "notes.db")
	}
	if cfg.Queue.Path == "" {
		cfg.Queue.Path = filepath.Join(cfg.DataDir, "queue.db")
	}
	if cfg.Vault.SaltPath == "" {
		cfg.Vault.SaltPath = filepath.Join(cfg.DataDir, "vault.salt")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Sync.MaxAttempts < 1 {
		return fmt.Errorf("sync.max_attempts must be at least 1")
	}
	return nil
}
