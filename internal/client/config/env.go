package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"api_base_url":         "API_BASE_URL",
	"tutor_documents_url":  "TUTOR_DOCUMENTS_URL",
	"parent_documents_url": "PARENT_DOCUMENTS_URL",
	"session_db":           "SESSION_DB",
	"request_timeout":      "REQUEST_TIMEOUT",
	"log_level":            "LOG_LEVEL",
	"log_format":           "LOG_FORMAT",
}

// parseEnv overlays cfg with environment variables. A .env file in the
// working directory is loaded first when present; variables already set in
// the process environment are not overridden by it.
//
// REQUEST_TIMEOUT accepts Go duration strings ("15s") or a bare number of
// seconds, like -t. Panics on any other value.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	v := viper.New()
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	v.SetDefault("api_base_url", cfg.APIBaseURL)
	v.SetDefault("tutor_documents_url", cfg.TutorDocumentsURL)
	v.SetDefault("parent_documents_url", cfg.ParentDocumentsURL)
	v.SetDefault("session_db", cfg.SessionDBPath)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)

	cfg.APIBaseURL = v.GetString("api_base_url")
	cfg.TutorDocumentsURL = v.GetString("tutor_documents_url")
	cfg.ParentDocumentsURL = v.GetString("parent_documents_url")
	cfg.SessionDBPath = v.GetString("session_db")
	if raw := strings.TrimSpace(v.GetString("request_timeout")); raw != "" {
		d, err := parseTimeout(raw)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	cfg.LogLevel = v.GetString("log_level")
	cfg.LogFormat = v.GetString("log_format")
}

func parseTimeout(raw string) (time.Duration, error) {
	if secs, err := cast.ToIntE(raw); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("invalid REQUEST_TIMEOUT %q: negative", raw)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid REQUEST_TIMEOUT %q: negative", raw)
	}
	return d, nil
}
