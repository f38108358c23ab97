package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	setArgs(t)

	t.Setenv("SIGNON_DB_PATH", " /tmp/x.db ")
	t.Setenv("SIGNON_SPLASH", "500ms")
	t.Setenv("SIGNON_AUDIO_DELAY", "1s")
	t.Setenv("SIGNON_VIDEO_DELAY", "")
	t.Setenv("SIGNON_STORAGE_QUOTA", "1024")
	t.Setenv("SIGNON_ATOMIC_LOGOUT", "true")
	t.Setenv("SIGNON_LOG_BACKEND", "logrus")
	t.Setenv("SIGNON_LOG_FORMAT", "json")
	t.Setenv("SIGNON_ADMIN_PASSWORD", "")

	cfg := &Config{VideoDelay: 5 * time.Second, AdminPassword: "admin123", LogLevel: "info"}
	parseEnv(cfg)

	want := &Config{
		DatabasePath:      "/tmp/x.db",
		SplashDuration:    500 * time.Millisecond,
		AudioDelay:        time.Second,
		VideoDelay:        5 * time.Second,
		StorageQuotaBytes: 1024,
		AtomicLogout:      true,
		LogLevel:          "info",
		LogBackend:        "logrus",
		LogFormat:         "json",
		AdminPassword:     "",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func Test_parseEnv_DotenvFile(t *testing.T) {
	t.Chdir(t.TempDir())

	envFile := filepath.Join(t.TempDir(), "signon.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SIGNON_LOG_LEVEL=debug\nSIGNON_TEXT_DELAY=10ms\n"), 0o600))
	// registered with t.Setenv so the variables godotenv sets are restored
	t.Setenv("SIGNON_LOG_LEVEL", "")
	t.Setenv("SIGNON_TEXT_DELAY", "")
	require.NoError(t, os.Unsetenv("SIGNON_LOG_LEVEL"))
	require.NoError(t, os.Unsetenv("SIGNON_TEXT_DELAY"))

	setArgs(t, "-env-file", envFile)

	cfg := &Config{}
	parseEnv(cfg)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Millisecond, cfg.TextDelay)
}

func Test_parseEnv_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	setArgs(t)

	t.Setenv("SIGNON_SPLASH", "soon")
	require.Panics(t, func() { parseEnv(&Config{}) })
}

func Test_parseEnv_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	setArgs(t, "-e", filepath.Join(t.TempDir(), "absent.env"))

	require.Panics(t, func() { parseEnv(&Config{}) })
}
