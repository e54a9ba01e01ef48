// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the authentication server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: credential store backend. Empty selects the
//     in-memory store; a postgres:// URL selects PostgreSQL; anything
//     else is a sqlite file path.
//   - BcryptCost: work factor for password hashing. Do not lower it in
//     production.
//   - ShutdownTimeout: how long to wait for in-flight requests on
//     shutdown.
type Config struct {
	EndpointAddr    string
	DatabaseDSN     string
	BcryptCost      int
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5000"
	c.DatabaseDSN = ""
	c.BcryptCost = 10
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying
// values from an optional JSON file and finally from command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
