package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                   string
	PostgresDSN            string
	SSEKeepAliveInterval   time.Duration
	StreamSubscriberBuffer int
	StreamSendTimeout      time.Duration
	TokenTTL               time.Duration
	TokenPurgeInterval     time.Duration
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                   envDefault("PORT", "8080"),
		PostgresDSN:            strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		SSEKeepAliveInterval:   15 * time.Second,
		StreamSubscriberBuffer: 16,
		StreamSendTimeout:      2 * time.Second,
		TokenTTL:               12 * time.Hour,
		TokenPurgeInterval:     10 * time.Minute,
	}
	var err error
	if cfg.SSEKeepAliveInterval, err = durationFromEnv("SSE_KEEPALIVE_INTERVAL", cfg.SSEKeepAliveInterval); err != nil {
		return Config{}, err
	}
	if cfg.StreamSendTimeout, err = durationFromEnv("STREAM_SEND_TIMEOUT", cfg.StreamSendTimeout); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL, err = durationFromEnv("TOKEN_TTL", cfg.TokenTTL); err != nil {
		return Config{}, err
	}
	if cfg.TokenPurgeInterval, err = durationFromEnv("TOKEN_PURGE_INTERVAL", cfg.TokenPurgeInterval); err != nil {
		return Config{}, err
	}
	if raw := strings.TrimSpace(os.Getenv("STREAM_SUBSCRIBER_BUFFER")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return Config{}, fmt.Errorf("STREAM_SUBSCRIBER_BUFFER must be a positive integer")
		}
		cfg.StreamSubscriberBuffer = size
	}
	return cfg, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return value, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
