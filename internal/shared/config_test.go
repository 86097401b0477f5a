package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Niconico.BaseURL != "https://nvapi.nicovideo.jp" {
			t.Errorf("expected base URL https://nvapi.nicovideo.jp, got %s", config.Niconico.BaseURL)
		}

		if config.Niconico.VideoID != "sm45285955" {
			t.Errorf("expected video ID sm45285955, got %s", config.Niconico.VideoID)
		}

		if config.Fixtures.Dir != "fixture_data/generated/fixtures" {
			t.Errorf("expected fixture dir fixture_data/generated/fixtures, got %s", config.Fixtures.Dir)
		}

		if config.Fixtures.Limit != 1 {
			t.Errorf("expected fixture limit 1, got %d", config.Fixtures.Limit)
		}

		if config.Database.Path != "nicofix.db" {
			t.Errorf("expected database path nicofix.db, got %s", config.Database.Path)
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
		if config.Fixtures.Dir != defaultConfig.Fixtures.Dir {
			t.Errorf("created config fixture dir doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[niconico]
session = "test_session"
base_url = "https://example.test"
user_id = "100"
video_id = "sm200"
mylist_id = "300"
series_id = "400"

[fixtures]
dir = "/custom/fixtures"
typemap_path = "/custom/typemap.go"
limit = 5
rate_limit = 0.5

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Niconico.BaseURL != "https://example.test" {
			t.Errorf("expected base URL https://example.test, got %s", config.Niconico.BaseURL)
		}

		if config.Fixtures.Limit != 5 {
			t.Errorf("expected fixture limit 5, got %d", config.Fixtures.Limit)
		}

		if config.Fixtures.RateLimit != 0.5 {
			t.Errorf("expected rate limit 0.5, got %f", config.Fixtures.RateLimit)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/config.toml")
		if err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("ResolveSession", func(t *testing.T) {
		t.Run("environment wins over config", func(t *testing.T) {
			t.Setenv("NICONICO_SESSION", "env_session")

			config := DefaultConfig()
			config.Niconico.Session = "config_session"

			session, err := config.ResolveSession()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session != "env_session" {
				t.Errorf("expected env_session, got %s", session)
			}
		})

		t.Run("falls back to config value", func(t *testing.T) {
			t.Setenv("NICONICO_SESSION", "")

			config := DefaultConfig()
			config.Niconico.Session = "config_session"

			session, err := config.ResolveSession()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session != "config_session" {
				t.Errorf("expected config_session, got %s", session)
			}
		})

		t.Run("missing everywhere", func(t *testing.T) {
			t.Setenv("NICONICO_SESSION", "")

			config := DefaultConfig()
			config.Niconico.Session = ""

			_, err := config.ResolveSession()
			if !errors.Is(err, ErrMissingSession) {
				t.Errorf("expected ErrMissingSession, got %v", err)
			}
		})
	})
}
