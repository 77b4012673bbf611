//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
port: "8080"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: info
  log_type: console
image_store:
  cloud_provider: azure
  connection_string: "UseDevelopmentStorage=true"
  container_name: "construction-images"
cache:
  enabled: false
auth:
  admin_tokens:
    - "0123456789abcdef0123456789abcdef"
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, validYAML)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "construction-images", cfg.ImageStore.ContainerName)
	assert.False(t, cfg.Cache.Enabled)
	assert.Len(t, cfg.Auth.AdminTokens, 1)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestInitializeRestConfig_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "short admin token",
			yaml: `
port: "8080"
database: {type: sqlite, dsn: ":memory:"}
logger: {log_level: info, log_type: console}
image_store: {cloud_provider: azure, connection_string: "x", container_name: "imgs"}
cache: {enabled: false}
auth: {admin_tokens: ["short"]}
`,
		},
		{
			name: "cache enabled without addr",
			yaml: `
port: "8080"
database: {type: sqlite, dsn: ":memory:"}
logger: {log_level: info, log_type: console}
image_store: {cloud_provider: azure, connection_string: "x", container_name: "construction-images"}
cache: {enabled: true}
auth: {admin_tokens: ["0123456789abcdef0123456789abcdef"]}
`,
		},
		{
			name: "non-numeric port",
			yaml: `
port: "eight"
database: {type: sqlite, dsn: ":memory:"}
logger: {log_level: info, log_type: console}
image_store: {cloud_provider: azure, connection_string: "x", container_name: "construction-images"}
cache: {enabled: false}
auth: {admin_tokens: ["0123456789abcdef0123456789abcdef"]}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.yaml)
			_, err := InitializeRestConfig(path)
			require.Error(t, err)
		})
	}
}
