package config

import (
	"encoding/json"
	"os"

	"github.com/adiomi90/alx-backend-user-data/internal/flagx"
	"github.com/adiomi90/alx-backend-user-data/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration
// files. timex.Duration accepts both "5s" strings and integer
// nanoseconds. Zero-valued fields are treated as absent so the file
// can override defaults selectively.
type JsonConfig struct {
	EndpointAddr    string         `json:"endpoint_addr"`
	DatabaseDSN     string         `json:"database_dsn"`
	BcryptCost      int            `json:"bcrypt_cost"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays Config with values from the JSON file named by
// the -c/-config flags. With no such flag the function is a no-op. An
// unreadable or malformed file panics, matching flag parse failures.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
