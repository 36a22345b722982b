package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tutoradmin/internal/flagx"
	"github.com/dmitrijs2005/tutoradmin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero-value fields left out of the file do not touch the runtime Config.
type JsonConfig struct {
	APIBaseURL         string          `json:"api_base_url"`
	TutorDocumentsURL  string          `json:"tutor_documents_url"`
	ParentDocumentsURL string          `json:"parent_documents_url"`
	SessionDBPath      string          `json:"session_db"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	LogLevel           string          `json:"log_level"`
	LogFormat          string          `json:"log_format"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config in args. Without that flag nothing happens.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigFile(args)
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

	setIfNotEmpty(&cfg.APIBaseURL, jc.APIBaseURL)
	setIfNotEmpty(&cfg.TutorDocumentsURL, jc.TutorDocumentsURL)
	setIfNotEmpty(&cfg.ParentDocumentsURL, jc.ParentDocumentsURL)
	setIfNotEmpty(&cfg.SessionDBPath, jc.SessionDBPath)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
