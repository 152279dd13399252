package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	DatabaseURI           string
	RedisAddress          string
	RedisPassword         string
	RedisDB               int
	DiscoveryURL          string
	JournalsURL           string
	EcommerceAPIURL       string
	EcommercePublicURL    string
	LMSURL                string
	ServiceWorkerUsername string
	AccessCacheTTL        time.Duration
	SessionSecret         string
	ShutdownTimeout       time.Duration
}

const (
	defaultRunAddress            = ":8080"
	defaultRedisAddress          = "localhost:6379"
	defaultSessionSecret         = "change-me-in-production"
	defaultServiceWorkerUsername = "ecommerce_worker"
	defaultAccessCacheTTL        = 3600 * time.Second
	defaultShutdownTimeout       = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		RedisAddress:          getString(lookup, "REDIS_ADDRESS", defaultRedisAddress),
		RedisPassword:         getString(lookup, "REDIS_PASSWORD", ""),
		RedisDB:               getInt(lookup, "REDIS_DB", 0),
		DiscoveryURL:          getString(lookup, "DISCOVERY_URL", ""),
		JournalsURL:           getString(lookup, "JOURNALS_URL", ""),
		EcommerceAPIURL:       getString(lookup, "ECOMMERCE_API_URL", ""),
		EcommercePublicURL:    getString(lookup, "ECOMMERCE_PUBLIC_URL", ""),
		LMSURL:                getString(lookup, "LMS_URL", ""),
		ServiceWorkerUsername: getString(lookup, "SERVICE_WORKER_USERNAME", defaultServiceWorkerUsername),
		AccessCacheTTL:        getDuration(lookup, "ACCESS_CACHE_TTL", defaultAccessCacheTTL),
		SessionSecret:         getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("journals", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cacheTTLStr        = cfg.AccessCacheTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for the access cache")
	fs.StringVar(&cfg.DiscoveryURL, "discovery", cfg.DiscoveryURL, "Discovery/catalog API base URL")
	fs.StringVar(&cfg.JournalsURL, "journals", cfg.JournalsURL, "Journals service base URL")
	fs.StringVar(&cfg.EcommerceAPIURL, "ecommerce-api", cfg.EcommerceAPIURL, "E-commerce API base URL")
	fs.StringVar(&cfg.EcommercePublicURL, "ecommerce-public", cfg.EcommercePublicURL, "E-commerce public (checkout) base URL")
	fs.StringVar(&cfg.LMSURL, "lms", cfg.LMSURL, "LMS base URL for xblock rendering")
	fs.StringVar(&cfg.ServiceWorkerUsername, "worker-username", cfg.ServiceWorkerUsername, "Username of the e-commerce service account")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&cacheTTLStr, "access-cache-ttl", cacheTTLStr, "TTL for cached journal access records")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.AccessCacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return nil, fmt.Errorf("invalid access cache ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.AccessCacheTTL <= 0 {
		cfg.AccessCacheTTL = defaultAccessCacheTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	required := []struct {
		name  string
		value string
	}{
		{"discovery URL", cfg.DiscoveryURL},
		{"journals URL", cfg.JournalsURL},
		{"ecommerce API URL", cfg.EcommerceAPIURL},
		{"ecommerce public URL", cfg.EcommercePublicURL},
		{"LMS URL", cfg.LMSURL},
		{"service worker username", cfg.ServiceWorkerUsername},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%s must be provided", r.name)
		}
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
