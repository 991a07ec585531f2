package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, map[string]any{
		"endpoint_addr_grpc":      "0.0.0.0:9000",
		"endpoint_addr_http":      ":8081",
		"database_dsn":            "postgres://json/db",
		"secret_key":              "json-secret",
		"token_validity_duration": "12h",
		"bcrypt_cost":             11,
		"cors_origin":             "https://json.example.com",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "0.0.0.0:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, ":8081", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://json/db", cfg.DatabaseDSN)
		assert.Equal(t, "json-secret", cfg.SecretKey)
		assert.Equal(t, 12*time.Hour, cfg.TokenValidityDuration)
		assert.Equal(t, 11, cfg.BcryptCost)
		assert.Equal(t, "https://json.example.com", cfg.CORSOrigin)
	})

	t.Run("absent fields keep previous values", func(t *testing.T) {
		partial := filepath.Join(dir, "partial.json")
		require.NoError(t, os.WriteFile(partial, []byte(`{"secret_key":"only-secret"}`), 0o600))
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "only-secret", cfg.SecretKey)
		assert.Equal(t, ":3000", cfg.EndpointAddrHTTP)
		assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrHTTP: ":1234", SecretKey: "key"}
		parseJson(cfg)

		assert.Equal(t, ":1234", cfg.EndpointAddrHTTP)
		assert.Equal(t, "key", cfg.SecretKey)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
