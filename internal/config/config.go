package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port              string
	WebhookSecret     string
	SpreadsheetID     string
	GoogleCredentials string
	ExaAPIKey         string
	ExaBaseURL        string
	HunterAPIKey      string
	HunterBaseURL     string
	DatabaseURL       string
	RateLimitWebhook  RateLimitConfig
	EnableCron        bool
	UpdateSchedule    string
	UpdateDelay       time.Duration
}

// Load reads configuration from environment variables and applies sane defaults.
// DATABASE_URL and HUNTER_API_KEY are optional; leaving them empty disables
// the log mirror and enrichment respectively.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		WebhookSecret:     getEnv("WEBHOOK_SECRET", "your-secret-key"),
		SpreadsheetID:     os.Getenv("SPREADSHEET_ID"),
		GoogleCredentials: os.Getenv("GOOGLE_CREDENTIALS"),
		ExaAPIKey:         os.Getenv("EXA_API_KEY"),
		ExaBaseURL:        os.Getenv("EXA_BASE_URL"),
		HunterAPIKey:      os.Getenv("HUNTER_API_KEY"),
		HunterBaseURL:     os.Getenv("HUNTER_BASE_URL"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		EnableCron:        getEnv("ENABLE_CRON", "false") == "true",
		UpdateSchedule:    getEnv("UPDATE_SCHEDULE", "0 2 * * *"),
		UpdateDelay:       parseDuration(getEnv("UPDATE_DELAY", "2s")),
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID must be set")
	}
	if cfg.ExaAPIKey == "" {
		return nil, fmt.Errorf("EXA_API_KEY must be set")
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_WEBHOOK", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WEBHOOK value: %w", err)
	}
	cfg.RateLimitWebhook = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 2 * time.Second
	}
	return d
}
