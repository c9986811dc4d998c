package config

import "time"

// Config holds runtime settings for the PlantParent CLI.
//
// Fields:
//   - DataPath: SQLite file that backs the device key-value store.
//   - InMemory: keep everything in memory (nothing survives exit).
//   - LogLevel / LogFormat: slog level name and "text" or "json".
//   - Locale: preferred display language, e.g. "fr-BE".
//   - SentryDSN: crash telemetry endpoint; empty disables telemetry.
//   - NotifyURLs: shoutrrr service URLs used by the notify command.
//   - NotifyTimeout: per-send timeout for NotifyURLs.
type Config struct {
	DataPath      string
	InMemory      bool
	LogLevel      string
	LogFormat     string
	Locale        string
	SentryDSN     string
	NotifyURLs    []string
	NotifyTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataPath = "plantparent.db"
	c.InMemory = false
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.Locale = "en"
	c.SentryDSN = ""
	c.NotifyURLs = nil
	c.NotifyTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
