package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "svc"
password = "secret"
dbname = "availability"

[directory]
url = "http://directory:8081"
timeout = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout, "defaults kept for omitted fields")
	assert.Equal(t, "host=db port=5433 user=svc password=secret dbname=availability sslmode=disable",
		cfg.Database.DSN())
	assert.Equal(t, "http://directory:8081", cfg.Directory.URL)
}

func TestLoad_EnvPasswordOverride(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
user = "svc"
password = "from-file"
dbname = "availability"

[directory]
url = "http://directory:8081"
`)

	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing dbname", body: "[database]\nhost = \"db\"\nuser = \"svc\"\n\n[directory]\nurl = \"http://d\"\n"},
		{name: "missing directory url", body: "[database]\nhost = \"db\"\nuser = \"svc\"\ndbname = \"a\"\n"},
		{name: "bad port", body: "[server]\nhttp_port = -1\n\n[database]\nhost = \"db\"\nuser = \"svc\"\ndbname = \"a\"\n\n[directory]\nurl = \"http://d\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
