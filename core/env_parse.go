// Package core holds configuration, settings and small shared atoms for the
// shelf backend.
package core

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvOrDefault returns the value of an environment variable or a default.
func GetEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseIntEnv parses an environment variable as an int, falling back to the
// default when unset or unparsable.
func ParseIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// ParseBoolEnv parses an environment variable as a boolean. Accepts
// case-insensitive true/1/yes/on and false/0/no/off; anything else falls
// back to the default.
func ParseBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	return def
}

// ParseDurationEnv parses an environment variable as a time.Duration
// ("30s", "5m"), falling back to the default when unset or unparsable.
func ParseDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
