package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Logging
	LogFormat string // "text" or "json"
	LogLevel  string // "debug", "info", "warn", "error"

	// CSV input
	CSVDelimiter string // Single-character field delimiter
	CSVLatin1    bool   // Decode CSV as ISO8859-1 (legacy exports)

	// Spreadsheet output
	MaxColWidth int // Column width cap for the fitted xlsx columns
}

func Load() Config {
	cfg := Config{
		LogFormat: envOr("TABITENS_LOG_FORMAT", "text"),
		LogLevel:  envOr("TABITENS_LOG_LEVEL", "info"),

		CSVDelimiter: envOr("TABITENS_CSV_DELIM", ";"),
		CSVLatin1:    envBool("TABITENS_CSV_LATIN1", false),

		MaxColWidth: envInt("TABITENS_MAX_COL_WIDTH", 40),
	}

	if cfg.LogFormat != "json" {
		cfg.LogFormat = "text"
	}
	if len(cfg.CSVDelimiter) != 1 {
		cfg.CSVDelimiter = ";"
	}
	if cfg.MaxColWidth <= 0 {
		cfg.MaxColWidth = 40
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
