/*
Package config handles loading and saving toolbelt settings.

Configuration is stored in ~/.toolbelt.json (override with TOOLBELT_CONFIG).
Comments and trailing commas are allowed. Missing keys keep their defaults.

Schema:
  {
    "settings": {
      "searchLimit": 20,
      "debounceMillis": 300,
      "recentLimit": 10,
      "catalogPath": "~/tools.yaml",
      "trackingEnabled": true,
      "historyRetentionDays": 30,
      "engine": "ranker"
    }
  }
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "TOOLBELT_CONFIG"
	// EnvTracking set to a false value disables search analytics.
	EnvTracking = "TOOLBELT_TRACKING"
)

// Search engines selectable with the engine setting.
const (
	EngineRanker = "ranker"
	EngineBM25   = "bm25"
)

// Config represents the root configuration structure.
type Config struct {
	Settings *Settings `json:"settings"`
}

// Settings contains global configuration options.
type Settings struct {
	// SearchLimit is the default number of results per query.
	SearchLimit int `json:"searchLimit"`

	// DebounceMillis is the quiet period of the interactive search box.
	DebounceMillis int `json:"debounceMillis"`

	// RecentLimit caps the recent-searches list. Values above 10 are clamped.
	RecentLimit int `json:"recentLimit"`

	// CatalogPath replaces the built-in catalog with a YAML or JSON file.
	CatalogPath string `json:"catalogPath,omitempty"`

	// TrackingEnabled turns search analytics on or off.
	TrackingEnabled bool `json:"trackingEnabled"`

	// HistoryRetentionDays is how long analytics rows are kept. 0 keeps them forever.
	HistoryRetentionDays int `json:"historyRetentionDays"`

	// Engine selects the ranker or the bm25 index.
	Engine string `json:"engine"`
}

// NewConfig creates a configuration holding the defaults.
func NewConfig() *Config {
	return &Config{Settings: defaultSettings()}
}

func defaultSettings() *Settings {
	return &Settings{
		SearchLimit:          20,
		DebounceMillis:       300,
		RecentLimit:          10,
		TrackingEnabled:      true,
		HistoryRetentionDays: 30,
		Engine:               EngineRanker,
	}
}

// Debounce returns the quiet period as a duration.
func (s *Settings) Debounce() time.Duration {
	return time.Duration(s.DebounceMillis) * time.Millisecond
}

// Retention returns the analytics retention window as a duration. Zero means
// history is never pruned.
func (s *Settings) Retention() time.Duration {
	return time.Duration(s.HistoryRetentionDays) * 24 * time.Hour
}

// ResolvedCatalogPath expands a leading ~ in CatalogPath.
func (s *Settings) ResolvedCatalogPath() string {
	p := s.CatalogPath
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// LoadEnv reads a .env file from the working directory when present.
// Variables already set in the environment win.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetDefaultConfigPath returns $TOOLBELT_CONFIG or ~/.toolbelt.json.
func GetDefaultConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".toolbelt.json"), nil
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadOrCreate reads the configuration at path, falling back to defaults
// when the file does not exist. An empty path means the default location.
func LoadOrCreate(path string) (*Config, error) {
	if path == "" {
		p, err := GetDefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		cfg = NewConfig()
	}

	applyEnv(cfg)
	if err := Validate(cfg); err != nil {
		return nil, &InvalidConfigError{Path: path, Message: err.Error(), Hint: "Fix the value or delete the key to use the default"}
	}
	return cfg, nil
}

// applyEnv lets environment variables override file settings.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvTracking); ok {
		if enabled, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Settings.TrackingEnabled = enabled
		}
	}
}
