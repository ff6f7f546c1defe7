package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/geniastudio/genia/internal/flagx"
	"github.com/geniastudio/genia/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the provider timeout either as a string
// like "120s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JSONConfig struct {
	DatabasePath     string         `json:"database_path"`
	ProviderEndpoint string         `json:"provider_endpoint"`
	ProviderAPIKey   string         `json:"provider_api_key"`
	ProviderTimeout  timex.Duration `json:"provider_timeout"`
	OutputDir        string         `json:"output_dir"`
	Language         string         `json:"language"`
}

// parseJSON overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/--config command-line flags (flagx.JSONConfigFlags); if
// none was given, nothing is loaded. Only non-zero JSON fields override the
// current values. Read or unmarshal errors panic (callers may recover).
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ProviderEndpoint != "" {
		cfg.ProviderEndpoint = jc.ProviderEndpoint
	}
	if jc.ProviderAPIKey != "" {
		cfg.ProviderAPIKey = jc.ProviderAPIKey
	}
	if jc.ProviderTimeout.Duration != 0 {
		cfg.ProviderTimeout = time.Duration(jc.ProviderTimeout.Duration)
	}
	if jc.OutputDir != "" {
		cfg.OutputDir = jc.OutputDir
	}
	if jc.Language != "" {
		cfg.Language = jc.Language
	}
}
