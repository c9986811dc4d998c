package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/plantparent/internal/flagx"
	"github.com/dmitrijs2005/plantparent/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell "absent" apart from "zero".
type JsonConfig struct {
	DataPath      *string         `json:"data_path"`
	InMemory      *bool           `json:"in_memory"`
	LogLevel      *string         `json:"log_level"`
	LogFormat     *string         `json:"log_format"`
	Locale        *string         `json:"locale"`
	SentryDSN     *string         `json:"sentry_dsn"`
	NotifyURLs    []string        `json:"notify_urls"`
	NotifyTimeout *timex.Duration `json:"notify_timeout"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
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
	if jc.DataPath != nil {
		cfg.DataPath = *jc.DataPath
	}
	if jc.InMemory != nil {
		cfg.InMemory = *jc.InMemory
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.Locale != nil {
		cfg.Locale = *jc.Locale
	}
	if jc.SentryDSN != nil {
		cfg.SentryDSN = *jc.SentryDSN
	}
	if jc.NotifyURLs != nil {
		cfg.NotifyURLs = jc.NotifyURLs
	}
	if jc.NotifyTimeout != nil {
		cfg.NotifyTimeout = jc.NotifyTimeout.Duration
	}
}
