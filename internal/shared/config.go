package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	API      APIConfig      `toml:"api"`
	Database DatabaseConfig `toml:"database"`
	Session  SessionConfig  `toml:"session"`
	UI       UIConfig       `toml:"ui"`
}

// APIConfig contains settings for the tracking backend.
type APIConfig struct {
	BaseURL      string  `toml:"base_url"`
	RatePerSec   float64 `toml:"rate_per_sec"`
	RateBurst    int     `toml:"rate_burst"`
	TMDBImageURL string  `toml:"tmdb_image_url"`
	TMDBTitleURL string  `toml:"tmdb_title_url"`
}

// DatabaseConfig contains database connection settings for local storage
// (tag palettes and UI preferences).
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// SessionConfig contains settings for the persisted login session.
type SessionConfig struct {
	Path string `toml:"path"`
}

// UIConfig contains default values for UI preferences. The live values are
// stored in the local database with a lifecycle independent of the session.
type UIConfig struct {
	AutoFilter bool `toml:"auto_filter"`
	AutoSearch bool `toml:"auto_search"`
	PageSize   int  `toml:"page_size"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: config file already exists at %s", ErrInvalidInput, path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
