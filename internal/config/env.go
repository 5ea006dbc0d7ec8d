package config

import (
	"os"
	"strings"
	"time"
)

var (
	truthy = map[string]bool{"1": true, "true": true, "yes": true, "on": true}
	falsy  = map[string]bool{"0": true, "false": true, "no": true, "off": true}
)

// lookupEnv returns the trimmed value of key; blank counts as unset so a
// stray `KEY=` line in .env does not wipe a default.
func lookupEnv(key string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	return raw, raw != ""
}

func envOrDefault(key, defaultValue string) string {
	if val, ok := lookupEnv(key); ok {
		return val
	}
	return defaultValue
}

// durationEnvOrDefault accepts Go duration strings ("10s", "1m30s"); unparsable
// or non-positive values keep the default.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	raw = strings.ToLower(raw)
	switch {
	case truthy[raw]:
		return true
	case falsy[raw]:
		return false
	default:
		return defaultValue
	}
}
