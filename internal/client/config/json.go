package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/taskease/internal/flagx"
	"github.com/dmitrijs2005/taskease/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields left
// out of the file keep the values already present in Config.
type JsonConfig struct {
	APIBaseURL        string          `json:"api_base_url"`
	CredentialBackend string          `json:"credential_backend"`
	StorePath         string          `json:"store_path"`
	RedisAddr         string          `json:"redis_addr"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	LogLevel          string          `json:"log_level"`
	LogFile           *string         `json:"log_file"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config. It panics on read or unmarshal errors.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.CredentialBackend != "" {
		cfg.CredentialBackend = jc.CredentialBackend
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.RedisAddr != "" {
		cfg.RedisAddr = jc.RedisAddr
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
}
