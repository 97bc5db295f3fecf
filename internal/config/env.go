package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKLINE_TASKS"); v != "" {
		cfg.TasksFile = v
	}
	if v := os.Getenv("TASKLINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKLINE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TASKLINE_NO_COLOR"); v != "" {
		cfg.NoColor = boolFromString(v)
	}
	// NO_COLOR is the conventional cross-tool switch.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}
}

// boolFromString interprets common truthy strings.
func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
