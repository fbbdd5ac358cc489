// Package config loads runtime configuration for the folio admin CLI.
//
// Sources, later ones overriding earlier ones: built-in defaults, the JSON
// file named by -c/-config, FOLIO_CLI_* environment variables, then flags.
//
//	{
//	  "server_url": "http://127.0.0.1:5001",
//	  "session_db": "folio-session.db",
//	  "request_timeout": "15s"
//	}
package config

import "time"

// Config holds runtime settings for the CLI.
type Config struct {
	ServerURL      string        `env:"SERVER_URL"`
	SessionDBPath  string        `env:"SESSION_DB"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with defaults suitable for a local server.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5001"
	c.SessionDBPath = "folio-session.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		panic(err)
	}
	parseFlags(cfg)
	return cfg
}
