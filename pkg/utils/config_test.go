package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadServerConfigDefaults(t *testing.T) {
	cfg, err := LoadServerConfigFrom("", envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerConfig(), cfg)
}

func TestLoadServerConfigYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "musicschool.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_addr: ":9000"
catalog_path: "catalog.yaml"
player_tick: 250ms
trusted_proxies: ["10.0.0.1"]
`), 0o644))

	cfg, err := LoadServerConfigFrom(path, envMap(map[string]string{
		"MUSICSCHOOL_HTTP_ADDR":       ":7000",
		"MUSICSCHOOL_TRUSTED_PROXIES": "10.0.0.2, 10.0.0.3",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTPAddr)
	assert.Equal(t, "catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, 250*time.Millisecond, cfg.PlayerTick)
	assert.Equal(t, []string{"10.0.0.2", "10.0.0.3"}, cfg.TrustedProxies)
	assert.Equal(t, ":9092", cfg.GRPCAddr)
}

func TestLoadServerConfigDashSelectsDatabase(t *testing.T) {
	cfg, err := LoadServerConfigFrom("", envMap(map[string]string{
		"MUSICSCHOOL_CATALOG": "-",
		"MUSICSCHOOL_DB_PATH": "/srv/catalog.db",
	}))
	require.NoError(t, err)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, "/srv/catalog.db", cfg.DBPath)
}

func TestLoadServerConfigErrors(t *testing.T) {
	_, err := LoadServerConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"), envMap(nil))
	assert.Error(t, err)

	_, err = LoadServerConfigFrom("", envMap(map[string]string{"MUSICSCHOOL_PLAYER_TICK": "soon"}))
	assert.ErrorContains(t, err, "MUSICSCHOOL_PLAYER_TICK")

	_, err = LoadServerConfigFrom("", envMap(map[string]string{"MUSICSCHOOL_BROTLI_LEVEL": "12"}))
	assert.ErrorContains(t, err, "MUSICSCHOOL_BROTLI_LEVEL")
}

func TestLoadSFTPConfig(t *testing.T) {
	t.Setenv("SFTP_HOST", "sftp.example.com")
	t.Setenv("SFTP_PORT", "2222")
	t.Setenv("SFTP_DIR", "")

	cfg := LoadSFTPConfig()
	assert.Equal(t, "sftp.example.com", cfg.Host)
	assert.Equal(t, 2222, cfg.Port)
	assert.Equal(t, "/", cfg.Dir)
	assert.False(t, cfg.InsecureIgnoreHostKey)
}
