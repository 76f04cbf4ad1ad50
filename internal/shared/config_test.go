package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL != "http://localhost:3002" {
			t.Errorf("expected api base URL http://localhost:3002, got %s", config.API.BaseURL)
		}

		if config.API.TMDBImageURL != "https://image.tmdb.org/t/p/w500" {
			t.Errorf("expected TMDB image URL https://image.tmdb.org/t/p/w500, got %s", config.API.TMDBImageURL)
		}

		if config.Database.Path != "mvx.db" {
			t.Errorf("expected database path mvx.db, got %s", config.Database.Path)
		}

		if config.UI.PageSize != 50 {
			t.Errorf("expected page size 50, got %d", config.UI.PageSize)
		}

		if config.UI.AutoFilter {
			t.Error("expected auto_filter to default to false")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.API.BaseURL != defaultConfig.API.BaseURL {
			t.Errorf("created config base URL doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "https://tracker.example.com"
rate_per_sec = 2.5
rate_burst = 4
tmdb_image_url = "https://image.tmdb.org/t/p/w300"
tmdb_title_url = "https://www.themoviedb.org"

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[session]
path = "/custom/session.json"

[ui]
auto_filter = true
auto_search = true
page_size = 25
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "https://tracker.example.com" {
			t.Errorf("expected base URL https://tracker.example.com, got %s", config.API.BaseURL)
		}

		if config.API.RatePerSec != 2.5 {
			t.Errorf("expected rate_per_sec 2.5, got %f", config.API.RatePerSec)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Session.Path != "/custom/session.json" {
			t.Errorf("expected session path /custom/session.json, got %s", config.Session.Path)
		}

		if !config.UI.AutoFilter {
			t.Error("expected auto_filter to be true")
		}

		if config.UI.PageSize != 25 {
			t.Errorf("expected page size 25, got %d", config.UI.PageSize)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/config.toml")
		if err == nil {
			t.Error("expected error loading nonexistent config")
		}
	})
}
