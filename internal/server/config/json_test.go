package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"endpoint_addr": ":7000",
		"database_dsn": "users.db",
		"bcrypt_cost": 12,
		"shutdown_timeout": "30s"
	}`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", path}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, ":7000", config.EndpointAddr)
	assert.Equal(t, "users.db", config.DatabaseDSN)
	assert.Equal(t, 12, config.BcryptCost)
	assert.Equal(t, 30*time.Second, config.ShutdownTimeout)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"endpoint_addr": ":7000"}`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", path}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, ":7000", config.EndpointAddr)
	assert.Equal(t, 10, config.BcryptCost)
	assert.Equal(t, 5*time.Second, config.ShutdownTimeout)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, ":5000", config.EndpointAddr)
}

func TestParseJson_MalformedFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", path}

	config := &Config{}
	config.LoadDefaults()

	require.Panics(t, func() { parseJson(config) })
}
