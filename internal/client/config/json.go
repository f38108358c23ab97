package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/signon/internal/flagx"
	"github.com/dmitrijs2005/signon/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from a zero value.
type JsonConfig struct {
	DatabasePath      *string         `json:"database_path"`
	SplashDuration    *timex.Duration `json:"splash_duration"`
	AudioDelay        *timex.Duration `json:"audio_delay"`
	TextDelay         *timex.Duration `json:"text_delay"`
	VideoDelay        *timex.Duration `json:"video_delay"`
	StorageQuotaBytes *int64          `json:"storage_quota_bytes"`
	AtomicLogout      *bool           `json:"atomic_logout"`
	LogLevel          *string         `json:"log_level"`
	LogBackend        *string         `json:"log_backend"`
	LogFormat         *string         `json:"log_format"`
	AdminPassword     *string         `json:"admin_password"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c / -config. Without the flag it does nothing. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SplashDuration != nil {
		cfg.SplashDuration = jc.SplashDuration.Duration
	}
	if jc.AudioDelay != nil {
		cfg.AudioDelay = jc.AudioDelay.Duration
	}
	if jc.TextDelay != nil {
		cfg.TextDelay = jc.TextDelay.Duration
	}
	if jc.VideoDelay != nil {
		cfg.VideoDelay = jc.VideoDelay.Duration
	}
	if jc.StorageQuotaBytes != nil {
		cfg.StorageQuotaBytes = *jc.StorageQuotaBytes
	}
	if jc.AtomicLogout != nil {
		cfg.AtomicLogout = *jc.AtomicLogout
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.AdminPassword != nil {
		cfg.AdminPassword = *jc.AdminPassword
	}
}
