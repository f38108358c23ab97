package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/signon/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "SIGNON_"

// parseEnv overlays Config with SIGNON_* environment variables.
//
// A dotenv file named by -e / -env-file is loaded first and must exist;
// otherwise ./.env is loaded if present. godotenv never overrides variables
// already set in the process. Panics on unreadable files or malformed values.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := lookup("DB_PATH"); ok {
		cfg.DatabasePath = v
	}
	envDuration("SPLASH", &cfg.SplashDuration)
	envDuration("AUDIO_DELAY", &cfg.AudioDelay)
	envDuration("TEXT_DELAY", &cfg.TextDelay)
	envDuration("VIDEO_DELAY", &cfg.VideoDelay)

	if v, ok := lookup("STORAGE_QUOTA"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			panic(err)
		}
		cfg.StorageQuotaBytes = n
	}
	if v, ok := lookup("ATOMIC_LOGOUT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.AtomicLogout = b
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("LOG_BACKEND"); ok {
		cfg.LogBackend = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv(envPrefix + "ADMIN_PASSWORD"); ok {
		cfg.AdminPassword = v
	}
}

// lookup returns a trimmed, non-empty SIGNON_ variable.
func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func envDuration(name string, dst *time.Duration) {
	v, ok := lookup(name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
