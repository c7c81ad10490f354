package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first if present; a missing
// file is not an error.
//
// Recognized variables:
//
//	CAMPUSHIRE_DATA_DIR   directory holding the database file
//	CAMPUSHIRE_DATA_FILE  database file name
//	CAMPUSHIRE_SEED       seed demo data on first run (bool)
//	CAMPUSHIRE_LOG_LEVEL  debug | info | warn | error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CAMPUSHIRE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CAMPUSHIRE_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("CAMPUSHIRE_SEED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeedDemoData = b
		}
	}
	if v := os.Getenv("CAMPUSHIRE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
