// Package config loads runtime configuration for the signon CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: SIGNON_* variables, optionally seeded from a dotenv file
//     given with -e / -env-file (or ./.env when present). Variables already
//     set in the process win over the file.
//  3. Optional JSON file selected with -c / -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   path to the local database file
//	-s int      splash duration (seconds)
//	-l string   log level (debug, info, warn, error)
//
// Environment variables
//
//	SIGNON_DB_PATH, SIGNON_SPLASH, SIGNON_AUDIO_DELAY, SIGNON_TEXT_DELAY,
//	SIGNON_VIDEO_DELAY, SIGNON_STORAGE_QUOTA, SIGNON_ATOMIC_LOGOUT,
//	SIGNON_LOG_LEVEL, SIGNON_LOG_BACKEND, SIGNON_LOG_FORMAT,
//	SIGNON_ADMIN_PASSWORD
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds. Absent keys keep the earlier value:
//
//	{
//	  "database_path": "/home/me/.config/signon/signon.db",
//	  "splash_duration": "3s",
//	  "audio_delay": "3s",
//	  "text_delay": "2s",
//	  "video_delay": "5s",
//	  "storage_quota_bytes": 5242880,
//	  "atomic_logout": false,
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "log_format": "text",
//	  "admin_password": "admin123"
//	}
package config
