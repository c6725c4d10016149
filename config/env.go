// Package config reads Setu's process configuration from the environment.
//
// Call config.Load() once at startup. It merges a .env file (if present)
// into the process environment via godotenv, never overriding variables
// that are already set. Every accessor falls back to a sensible default,
// so a bare process with no .env still boots.
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultAppEnv     = "local"
	defaultAppHost    = "127.0.0.1"
	defaultAppPort    = uint16(8080)
	defaultRedisAddr  = "localhost:6379"
	defaultJWTSecret  = "change-me-in-production"
	defaultMongoLogDB = "setu"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load merges the .env file into the process environment. A missing .env
// is not an error; any other read failure is reported once and cached.
func Load() error {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			loadErr = err
		}
	})
	return loadErr
}

// Get reads any environment key with a fallback, loading .env first.
func Get(key, fallback string) string {
	_ = Load()

	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// AppEnv returns the deployment environment ("local", "production", ...).
func AppEnv() string {
	return Get("APP_ENV", defaultAppEnv)
}

// AppHost returns the HTTP bind host.
func AppHost() string {
	return Get("APP_HOST", defaultAppHost)
}

// AppPort returns the HTTP bind port. Non-numeric values and values
// outside 0-65535 fall back to the default.
func AppPort() uint16 {
	raw := Get("APP_PORT", "")
	if raw == "" {
		return defaultAppPort
	}

	port, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return defaultAppPort
	}
	return uint16(port)
}

// CORSEnabled reports whether the permissive CORS layer should be attached.
// Defaults to true; set CORS_ENABLED=false to disable.
func CORSEnabled() bool {
	raw := Get("CORS_ENABLED", "")
	if raw == "" {
		return true
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return enabled
}

// JWTSecret returns the HS256 signing secret for pkg/auth.
func JWTSecret() string {
	return Get("JWT_SECRET", defaultJWTSecret)
}

// RedisAddr returns the Redis address for the Redis-backed rate limiter.
func RedisAddr() string {
	return Get("REDIS_ADDR", defaultRedisAddr)
}

// RedisPassword returns the Redis password, empty when unset.
func RedisPassword() string {
	return Get("REDIS_PASSWORD", "")
}

// MongoLogURI returns the MongoDB URI for the async log sink.
// Empty means the Mongo handler is not wired.
func MongoLogURI() string {
	return Get("MONGO_LOG_URI", "")
}

// MongoLogDatabase returns the database name for the Mongo log sink.
func MongoLogDatabase() string {
	return Get("MONGO_LOG_DB", defaultMongoLogDB)
}
