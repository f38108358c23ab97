package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the signon CLI.
//
// Units: every delay is a time.Duration; StorageQuotaBytes is a byte count
// (0 disables the quota).
type Config struct {
	DatabasePath string

	SplashDuration time.Duration
	AudioDelay     time.Duration
	TextDelay      time.Duration
	VideoDelay     time.Duration

	StorageQuotaBytes int64
	// AtomicLogout removes all session records in one transaction instead of
	// key by key.
	AtomicLogout bool

	LogLevel   string
	LogBackend string
	// LogFormat is "text" or "json".
	LogFormat string

	AdminPassword string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = defaultDatabasePath()
	c.SplashDuration = 3 * time.Second
	c.AudioDelay = 3 * time.Second
	c.TextDelay = 2 * time.Second
	c.VideoDelay = 5 * time.Second
	c.StorageQuotaBytes = 5 << 20
	c.AtomicLogout = false
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.LogFormat = "text"
	c.AdminPassword = "admin123"
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "signon.db"
	}
	return filepath.Join(dir, "signon", "signon.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
