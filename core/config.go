package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the backend configuration, loaded from the environment (and a
// .env file, loaded by main before this runs).
type Config struct {
	// DataDir is where the database, covers and settings live.
	DataDir string
	// LibraryDir is the drop directory scanned for new book files.
	LibraryDir string
	// LogFile is the rotating log file path.
	LogFile string
	// LogLevel is the minimum log level name (debug/info/warn/error).
	LogLevel string
	// DevMode enables human-readable console logging.
	DevMode bool
	// WatchInterval is how often watch mode rescans the library directory.
	WatchInterval time.Duration

	// OpenAIAPIKey enables the optional blurb command when non-empty.
	OpenAIAPIKey string
	// OpenAIBaseURL overrides the OpenAI endpoint (local gateways).
	OpenAIBaseURL string
	// BlurbModel is the chat model used for shelf blurbs.
	BlurbModel string
	// BlurbMaxTokens caps blurb length.
	BlurbMaxTokens int
}

// LoadConfig reads configuration from the environment, applying defaults
// that put all state under ~/.localshelf.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	defaultData := filepath.Join(home, ".localshelf")

	cfg := &Config{
		DataDir:        GetEnvOrDefault("SHELF_DATA_DIR", defaultData),
		LibraryDir:     GetEnvOrDefault("SHELF_LIBRARY_DIR", filepath.Join(defaultData, "library")),
		LogFile:        GetEnvOrDefault("SHELF_LOG_FILE", filepath.Join(defaultData, "shelf.log")),
		LogLevel:       GetEnvOrDefault("SHELF_LOG_LEVEL", "info"),
		DevMode:        ParseBoolEnv("SHELF_DEV_MODE", false),
		WatchInterval:  ParseDurationEnv("SHELF_WATCH_INTERVAL", 30*time.Second),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_API_BASE_URL"),
		BlurbModel:     GetEnvOrDefault("SHELF_BLURB_MODEL", "gpt-4o-mini"),
		BlurbMaxTokens: ParseIntEnv("SHELF_BLURB_MAX_TOKENS", 256),
	}

	if cfg.WatchInterval <= 0 {
		return nil, fmt.Errorf("SHELF_WATCH_INTERVAL must be positive, got %s", cfg.WatchInterval)
	}
	return cfg, nil
}

// DatabasePath is the SQLite file under the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "shelf.db")
}

// CoversDir is where generated cover images are written.
func (c *Config) CoversDir() string {
	return filepath.Join(c.DataDir, "covers")
}

// SettingsPath is the YAML reader-settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.DataDir, "settings.yaml")
}
