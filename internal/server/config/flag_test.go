package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("all flags", func(t *testing.T) {
		os.Args = []string{"cmd",
			"-a", "127.0.0.1:9090", "-l", ":8080", "-d", "postgres://flag/db",
			"-s", "flag-secret", "-t", "6", "-o", "https://flag.example.com",
		}

		config := &Config{}
		config.LoadDefaults()
		require.NotPanics(t, func() { parseFlags(config) })

		assert.Equal(t, "127.0.0.1:9090", config.EndpointAddrGRPC)
		assert.Equal(t, ":8080", config.EndpointAddrHTTP)
		assert.Equal(t, "postgres://flag/db", config.DatabaseDSN)
		assert.Equal(t, "flag-secret", config.SecretKey)
		assert.Equal(t, 6*time.Hour, config.TokenValidityDuration)
		assert.Equal(t, "https://flag.example.com", config.CORSOrigin)
	})

	t.Run("no flags keeps previous values", func(t *testing.T) {
		os.Args = []string{"cmd"}

		config := &Config{}
		config.LoadDefaults()
		config.SecretKey = "keep-me"
		parseFlags(config)

		assert.Equal(t, "keep-me", config.SecretKey)
		assert.Equal(t, "0.0.0.0:50051", config.EndpointAddrGRPC)
		assert.Equal(t, 24*time.Hour, config.TokenValidityDuration)
	})

	t.Run("unrelated flags are ignored", func(t *testing.T) {
		os.Args = []string{"cmd", "-test.v", "-s", "secret"}

		config := &Config{}
		config.LoadDefaults()
		require.NotPanics(t, func() { parseFlags(config) })

		assert.Equal(t, "secret", config.SecretKey)
	})
}
