package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func EnvInt(key string, def int) int {
	v, err := strconv.Atoi(EnvOrDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

func EnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(EnvOrDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

// EnvList splits a comma separated variable, dropping blanks.
func EnvList(key string) []string {
	raw := EnvOrDefault(key, "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
