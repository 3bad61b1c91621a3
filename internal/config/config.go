// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. Configuration is read once at startup and never mutated.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"hatrek/internal/contentstack"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Only enable it behind a reverse proxy that sets those headers.
	TrustProxy bool

	// Content delivery
	Contentstack contentstack.Config

	// Assistant proxy
	AssistantURL             string
	AssistantAuthHeaderKey   string
	AssistantAuthHeaderValue string
	AssistantTimeout         time.Duration
	AssistantRateLimit       int // requests per minute per client IP

	// Valkey (optional: page cache and shared conversation lock)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	PageCacheTTL   time.Duration

	// PostgreSQL (optional: assistant chat log)
	DatabaseURL string
}

// LoadDotEnv loads variables from .env-style files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate.
func Load() (*Config, error) {
	region, ok := contentstack.ParseRegion(os.Getenv("CONTENTSTACK_REGION"))
	if !ok {
		return nil, fmt.Errorf("CONTENTSTACK_REGION must be \"us\" or \"eu\", got %q", os.Getenv("CONTENTSTACK_REGION"))
	}

	csTimeout, err := durationOrDefault("CONTENTSTACK_TIMEOUT", contentstack.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	assistantTimeout, err := durationOrDefault("ASSISTANT_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}
	pageTTL, err := durationOrDefault("PAGE_CACHE_TTL", time.Minute)
	if err != nil {
		return nil, err
	}
	rateLimit, err := intOrDefault("ASSISTANT_RATE_LIMIT", 20)
	if err != nil {
		return nil, err
	}
	trustProxy, err := boolOrDefault("TRUST_PROXY", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		TrustProxy: trustProxy,

		Contentstack: contentstack.Config{
			APIKey:        os.Getenv("CONTENTSTACK_API_KEY"),
			DeliveryToken: os.Getenv("CONTENTSTACK_DELIVERY_TOKEN"),
			Environment:   envOrDefault("CONTENTSTACK_ENVIRONMENT", "production"),
			Region:        region,
			BaseURL:       os.Getenv("CONTENTSTACK_BASE_URL"),
			Timeout:       csTimeout,
		},

		AssistantURL:             os.Getenv("ASSISTANT_API_URL"),
		AssistantAuthHeaderKey:   os.Getenv("ASSISTANT_AUTH_HEADER_KEY"),
		AssistantAuthHeaderValue: os.Getenv("ASSISTANT_AUTH_HEADER_VALUE"),
		AssistantTimeout:         assistantTimeout,
		AssistantRateLimit:       rateLimit,

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		PageCacheTTL:   pageTTL,

		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if cfg.Env == "production" {
		cs := cfg.Contentstack
		if (cs.APIKey == "") != (cs.DeliveryToken == "") {
			return nil, fmt.Errorf("CONTENTSTACK_API_KEY and CONTENTSTACK_DELIVERY_TOKEN must be set together in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ValkeyEnabled reports whether a Valkey host is configured.
func (c *Config) ValkeyEnabled() bool {
	return c.ValkeyHost != ""
}

// DatabaseEnabled reports whether a PostgreSQL DSN is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.DatabaseURL != ""
}

// ConversationLockTTL is how long a shared conversation lock lives. It
// outlasts the assistant timeout so the lock cannot expire while its
// request is still pending.
func (c *Config) ConversationLockTTL() time.Duration {
	return c.AssistantTimeout + 30*time.Second
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration such as \"15s\", got %q", key, v)
	}
	return d, nil
}

func intOrDefault(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func boolOrDefault(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false, got %q", key, v)
	}
	return b, nil
}
