// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for chronicle configuration.
	DefaultConfigDir = ".chronicle"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultCatalogFile is the default catalog database file name.
	DefaultCatalogFile = "catalog.db"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Engine   EngineConfig   `yaml:"engine,omitempty"`
	Playback PlaybackConfig `yaml:"playback,omitempty"`
	SQLite   SQLiteConfig   `yaml:"sqlite,omitempty"`
}

// EngineConfig holds tunables for the derivation engine.
type EngineConfig struct {
	// CurveOffset is the perpendicular control-point offset magnitude
	// for active travel segments, in plane units.
	CurveOffset float64 `yaml:"curve_offset,omitempty"`
	// ZoomMin and ZoomMax bound the camera zoom factor.
	ZoomMin float64 `yaml:"zoom_min,omitempty"`
	ZoomMax float64 `yaml:"zoom_max,omitempty"`
	// LeaderboardLimit caps how many leaderboard rows commands print.
	LeaderboardLimit int `yaml:"leaderboard_limit,omitempty"`
	// StartingLocations maps a house to its default starting location id.
	StartingLocations map[string]string `yaml:"starting_locations,omitempty"`
	// DefaultStart is the starting location for houses without an
	// explicit entry.
	DefaultStart string `yaml:"default_start,omitempty"`
}

// PlaybackConfig holds autoplay settings for the play command.
type PlaybackConfig struct {
	// Interval is the autoplay tick period.
	Interval Duration `yaml:"interval,omitempty"`
}

// Duration wraps time.Duration so config files can spell intervals as
// "4s" or "500ms".
type Duration time.Duration

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// SQLiteConfig holds configuration for the SQLite catalog store.
type SQLiteConfig struct {
	// Path is the file path to the catalog database.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			CurveOffset:      2.0,
			ZoomMin:          0.4,
			ZoomMax:          15.0,
			LeaderboardLimit: 8,
			StartingLocations: map[string]string{
				"Targaryen": "PENTOS",
			},
			DefaultStart: "WINTERFELL",
		},
		Playback: PlaybackConfig{
			Interval: Duration(4 * time.Second),
		},
	}
}

// StartFor returns the configured starting location id for a house.
func (e EngineConfig) StartFor(house string) string {
	if loc, ok := e.StartingLocations[house]; ok {
		return loc
	}
	return e.DefaultStart
}

// Load loads configuration from the .chronicle directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'chronicle init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = CatalogPath(basePath)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("CHRONICLE_DB_PATH"); path != "" {
		c.SQLite.Path = path
	}
}

// ConfigDir returns the path to the .chronicle config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// CatalogPath returns the default catalog database path.
func CatalogPath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultCatalogFile)
}

// Exists checks if a chronicle config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
