package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads an optional .env file into the process environment. Missing
// files are fine; real deployments inject variables directly.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

// Getenv returns the value of key, or fallback if unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetenvBool parses key as a boolean, returning fallback on absence or
// parse failure.
func GetenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// AppEnv returns the current application environment (development by default).
func AppEnv() string {
	return Getenv("APP_ENV", "development")
}

// ServerPort returns the HTTP listen port.
func ServerPort() string {
	return Getenv("PORT", "8080")
}

// CacheBackend selects the cache implementation: "memory" or "redis".
func CacheBackend() string {
	return Getenv("CACHE_BACKEND", "memory")
}

// RecordOnView reports whether dashboard page views should persist
// coverage snapshots and alerts for the displayed rows.
func RecordOnView() bool {
	return GetenvBool("COVERAGE_RECORD_ON_VIEW", true)
}
