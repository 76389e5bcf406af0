package env

import (
	"os"
	"strings"
)

// First returns the first non-empty variable among keys, or fallback.
func First(fallback string, keys ...string) string {
	for _, key := range keys {
		if val := strings.TrimSpace(os.Getenv(key)); val != "" {
			return val
		}
	}
	return fallback
}

// Set reports whether key is present, even when empty. Used for NO_COLOR style flags.
func Set(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}
