package config

import (
	"fmt"
	"os"
)

// Default backend base URLs by environment, mirroring the build-time
// selection the storefront has always done.
const (
	devBackendBaseURL  = "http://localhost:8000/api"
	prodBackendBaseURL = "https://api.shopcart.example.com/api"
)

// Config is the storefront's boot configuration, loaded from environment
// variables (a .env file is honored by main before Load runs).
type Config struct {
	HTTPAddr       string
	Env            string // "development" or "production"
	BackendBaseURL string
	RedisAddr      string
	SessionSecret  string
	DemoFallback   bool
	SecureCookies  bool
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	env := getenv("ENV", "development")

	defaultBackend := devBackendBaseURL
	if env == "production" {
		defaultBackend = prodBackendBaseURL
	}

	cfg := Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":3000"),
		Env:            env,
		BackendBaseURL: getenv("BACKEND_BASE_URL", defaultBackend),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		DemoFallback:   getenv("DEMO_FALLBACK", "false") == "true",
		SecureCookies:  env == "production",
	}

	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET environment variable is required")
	}
	if len(cfg.SessionSecret) < 32 {
		return Config{}, fmt.Errorf("SESSION_SECRET must be at least 32 characters long")
	}

	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
