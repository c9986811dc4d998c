// Package config loads runtime configuration for the PlantParent CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite data file
//	-mem        keep data in memory only
//	-l string   log level (debug, info, warn, error)
//	-locale     preferred display language
//	-s string   Sentry DSN for crash reports
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "10s" or integer
// nanoseconds:
//
//	{
//	  "data_path": "plantparent.db",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "locale": "nl",
//	  "sentry_dsn": "",
//	  "notify_urls": ["ntfy://ntfy.sh/my-plants"],
//	  "notify_timeout": "10s"
//	}
//
// Keys missing from the JSON file leave the current value untouched.
package config
