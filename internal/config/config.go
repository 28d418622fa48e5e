// ABOUTME: Scorecard configuration management with backend selection.
// ABOUTME: Handles settings, report targets, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/harperreed/scorecard/internal/charm"
	"github.com/harperreed/scorecard/internal/report"
	"github.com/harperreed/scorecard/internal/storage"
	"github.com/harperreed/scorecard/internal/tracker"
)

// Backends lists the storage backends OpenStorage understands.
var Backends = []string{"sqlite", "badger", "charm"}

// Config stores scorecard configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger", or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts scorecard.db here; Badger uses the badger/ subdirectory.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/scorecard.
	DataDir string `json:"data_dir,omitempty"`

	// BaselinePolicy is "keep-history" (default) or "recompute".
	BaselinePolicy string `json:"baseline_policy,omitempty"`

	// Targets overrides report thresholds; zero fields keep their defaults.
	Targets *report.Targets `json:"targets,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetPolicy parses the configured baseline policy.
func (c *Config) GetPolicy() (tracker.BaselinePolicy, error) {
	return tracker.ParsePolicy(c.BaselinePolicy)
}

// GetTargets returns report targets with defaults applied.
func (c *Config) GetTargets() report.Targets {
	if c.Targets == nil {
		return report.DefaultTargets()
	}
	return c.Targets.WithDefaults()
}

// SQLitePath returns the database file used by the sqlite backend.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.GetDataDir(), storage.DBFile)
}

// BadgerDir returns the directory used by the badger backend.
func (c *Config) BadgerDir() string {
	return filepath.Join(c.GetDataDir(), "badger")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage(log *zap.Logger) (storage.Repository, error) {
	return c.OpenBackend(c.GetBackend(), log)
}

// OpenBackend opens the named backend using this config's paths.
func (c *Config) OpenBackend(backend string, log *zap.Logger) (storage.Repository, error) {
	switch backend {
	case "sqlite":
		return storage.Open(c.SQLitePath())
	case "badger":
		return storage.OpenBadger(c.BadgerDir(), log)
	case "charm":
		client, err := charm.InitClient()
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown backend: %q (use one of %s)", backend, strings.Join(Backends, ", "))
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "scorecard", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
