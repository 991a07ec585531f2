package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// local .env file first if one exists. Variable names match the original
// Queueflex deployment so existing manifests keep working.
//
//	JWT_SECRET_KEY          signing secret (required, no default)
//	TOKEN_EXPIRATION_HOURS  bearer token lifetime in hours
//	PORT                    REST listen port
//	GRPC_PORT               gRPC bind address (host:port)
//	DATABASE_DSN            PostgreSQL DSN
//	BCRYPT_COST             password hashing work factor
//	CORS_ORIGIN             allowed origin for the REST endpoint
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("JWT_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_EXPIRATION_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			config.TokenValidityDuration = time.Duration(hours) * time.Hour
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		config.EndpointAddrHTTP = ":" + v
	}
	if v := os.Getenv("GRPC_PORT"); v != "" {
		config.EndpointAddrGRPC = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = cost
		}
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		config.CORSOrigin = v
	}
}
