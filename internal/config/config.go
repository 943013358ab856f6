// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr       string
	DefaultInterface string
	MaxBodyBytes     int64
	LogLevel         slog.Level
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: QRNETCTL_LISTEN_ADDR (127.0.0.1:8080),
// QRNETCTL_DEFAULT_INTERFACE (wlan0), QRNETCTL_MAX_BODY_BYTES (8192),
// QRNETCTL_LOG_LEVEL (info).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("QRNETCTL_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	defaultInterface := "wlan0"
	if v, ok := os.LookupEnv("QRNETCTL_DEFAULT_INTERFACE"); ok {
		if v == "" {
			return nil, errors.New("QRNETCTL_DEFAULT_INTERFACE must not be empty")
		}
		defaultInterface = v
	}

	// A QR code holds at most 2953 bytes; the default leaves room for the
	// JSON envelope and escaping.
	maxBodyBytes := int64(8192)
	if v, ok := os.LookupEnv("QRNETCTL_MAX_BODY_BYTES"); ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("QRNETCTL_MAX_BODY_BYTES has invalid value %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("QRNETCTL_MAX_BODY_BYTES must be positive, got %d", parsed)
		}
		maxBodyBytes = parsed
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("QRNETCTL_LOG_LEVEL"); ok {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("QRNETCTL_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	return &Config{
		ListenAddr:       listenAddr,
		DefaultInterface: defaultInterface,
		MaxBodyBytes:     maxBodyBytes,
		LogLevel:         logLevel,
	}, nil
}
