package gcp

import (
	"log/slog"
	"os"
	"strconv"
)

// GetEnv is a helper to read an environment variable or return a default value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// GetEnvUint reads an unsigned integer environment variable.
// Unset or unparsable values yield the fallback; unparsable ones are logged.
func GetEnvUint(key string, fallback uint64) uint64 {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		slog.Warn("Ignoring invalid environment variable", "key", key, "value", value, "fallback", fallback, "error", err)
		return fallback
	}
	return n
}
