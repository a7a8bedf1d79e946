// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mmynk/tipcalc/internal/format"
)

// Config holds settings shared by the server and the CLI.
type Config struct {
	// Addr is the server listen address (TIPCALC_ADDR).
	Addr string

	// Locale is the default BCP 47 locale (TIPCALC_LOCALE).
	Locale string

	// Metrics enables the /metrics endpoint (TIPCALC_METRICS).
	Metrics bool

	// CORSOrigin is sent as Access-Control-Allow-Origin (TIPCALC_CORS_ORIGIN).
	CORSOrigin string
}

// Load reads an optional .env file from the working directory and then the
// environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:       getEnv("TIPCALC_ADDR", ":8080"),
		Locale:     getEnv("TIPCALC_LOCALE", format.DefaultLocale),
		CORSOrigin: getEnv("TIPCALC_CORS_ORIGIN", "*"),
	}

	metrics, err := strconv.ParseBool(getEnv("TIPCALC_METRICS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TIPCALC_METRICS: %w", err)
	}
	cfg.Metrics = metrics

	if _, err := format.NewCurrency(cfg.Locale); err != nil {
		return Config{}, fmt.Errorf("invalid TIPCALC_LOCALE: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
