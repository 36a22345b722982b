package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the admin client.
//
// Fields:
//   - APIBaseURL: root of the backend REST API; every API path is appended to it.
//   - TutorDocumentsURL / ParentDocumentsURL: hosts serving uploaded documents.
//   - SessionDBPath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request timeout, zero keeps the transport default.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	APIBaseURL         string
	TutorDocumentsURL  string
	ParentDocumentsURL string
	SessionDBPath      string
	RequestTimeout     time.Duration
	LogLevel           string
	LogFormat          string
}

// LoadDefaults populates c with localhost fallbacks.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.TutorDocumentsURL = "http://localhost:5000/uploads/tutors/"
	c.ParentDocumentsURL = "http://localhost:5000/uploads/parents/"
	c.SessionDBPath = "data/session.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
