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
	Niconico NiconicoConfig `toml:"niconico"`
	Fixtures FixturesConfig `toml:"fixtures"`
	Database DatabaseConfig `toml:"database"`
}

// NiconicoConfig contains Niconico API access settings and the sample IDs
// used to fetch individual fixtures.
//
// Session is the user session cookie value. Fixtures generated with user
// credentials contain personal data; only dedicated test accounts should
// be used. The NICONICO_SESSION environment variable takes precedence
// over the value stored here so that credentials never need to be
// committed to disk.
type NiconicoConfig struct {
	Session  string `toml:"session"`
	BaseURL  string `toml:"base_url"`
	UserID   string `toml:"user_id"`
	VideoID  string `toml:"video_id"`
	MylistID string `toml:"mylist_id"`
	SeriesID string `toml:"series_id"`
}

// FixturesConfig contains fixture output settings.
type FixturesConfig struct {
	Dir         string  `toml:"dir"`          // Root directory for generated fixture JSON files
	TypeMapPath string  `toml:"typemap_path"` // Path of the generated type-mapping Go file
	Limit       int     `toml:"limit"`        // Max elements kept from list responses
	RateLimit   float64 `toml:"rate_limit"`   // API requests per second
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
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
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveSession returns the session credential for API access.
//
// The NICONICO_SESSION environment variable wins over the config value.
// Returns [ErrMissingSession] when neither is set.
func (c *Config) ResolveSession() (string, error) {
	if session := os.Getenv("NICONICO_SESSION"); session != "" {
		return session, nil
	}
	if c.Niconico.Session != "" {
		return c.Niconico.Session, nil
	}
	return "", fmt.Errorf("%w: set NICONICO_SESSION before running generation", ErrMissingSession)
}
