package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# Chronicle-Core Configuration

engine:
  curve_offset: 2.0
  zoom_min: 0.4
  zoom_max: 15.0
  leaderboard_limit: 8
  starting_locations:
    Targaryen: PENTOS
  default_start: WINTERFELL

playback:
  interval: 4s

sqlite:
  # path: .chronicle/catalog.db (or set CHRONICLE_DB_PATH env var)
`

// WriteDefault creates the .chronicle directory and writes a default
// config file.
func WriteDefault(basePath string) error {
	configDir := filepath.Join(basePath, DefaultConfigDir)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
