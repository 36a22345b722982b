// Package config loads runtime configuration for the admin client.
//
// Sources & precedence
//
//  1. Built-in localhost defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-d string   session database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # Environment
//
//	API_BASE_URL, TUTOR_DOCUMENTS_URL, PARENT_DOCUMENTS_URL, SESSION_DB,
//	REQUEST_TIMEOUT ("15s" or seconds), LOG_LEVEL, LOG_FORMAT ("text" or "json")
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.example.com/api",
//	  "tutor_documents_url": "https://files.example.com/tutors/",
//	  "parent_documents_url": "https://files.example.com/parents/",
//	  "session_db": "/var/lib/tutoradmin/session.db",
//	  "request_timeout": "15s",
//	  "log_level": "debug",
//	  "log_format": "json"
//	}
package config
