package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "env-secret")
	t.Setenv("TOKEN_EXPIRATION_HOURS", "48")
	t.Setenv("PORT", "8080")
	t.Setenv("GRPC_PORT", "0.0.0.0:9090")
	t.Setenv("DATABASE_DSN", "postgres://env/db")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 48*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, "0.0.0.0:9090", c.EndpointAddrGRPC)
	assert.Equal(t, "postgres://env/db", c.DatabaseDSN)
	assert.Equal(t, 12, c.BcryptCost)
	assert.Equal(t, "https://app.example.com", c.CORSOrigin)
}

func TestParseEnv_EmptyValuesKeepDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("TOKEN_EXPIRATION_HOURS", "")
	t.Setenv("PORT", "")
	t.Setenv("GRPC_PORT", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("CORS_ORIGIN", "")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, ":3000", c.EndpointAddrHTTP)
	assert.Equal(t, "0.0.0.0:50051", c.EndpointAddrGRPC)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Empty(t, c.SecretKey)
}

func TestParseEnv_BadNumbersIgnored(t *testing.T) {
	t.Setenv("TOKEN_EXPIRATION_HOURS", "soon")
	t.Setenv("BCRYPT_COST", "lots")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, 10, c.BcryptCost)
}
