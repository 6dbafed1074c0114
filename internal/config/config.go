// Package config loads server and simulator settings from the
// environment, falling back to defaults.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Addr        string // listen address for the API server
	LogLevel    string // zerolog level name
	CatalogPath string // optional task catalog override; empty = embedded
	MaxGames    int    // cap on concurrently held games in the server
}

func Default() Config {
	return Config{
		Addr:     ":8471",
		LogLevel: "info",
		MaxGames: 100,
	}
}

// FromEnv loads configuration from environment variables, falling back
// to defaults for anything unset.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("NOFS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("NOFS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NOFS_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := getEnvInt("NOFS_MAX_GAMES"); v > 0 {
		cfg.MaxGames = v
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
