package main

import (
	"os"
	"time"
)

// Token and confirmation-code lifetimes.
const (
	accessTokenTTL      = 15 * time.Minute
	refreshTokenTTL     = 7 * 24 * time.Hour
	confirmationCodeTTL = 3 * time.Minute
)

type appConfig struct {
	AccessSecret  []byte // signs access tokens (HS256)
	RefreshSecret []byte // signs refresh tokens, distinct from AccessSecret
	Environment   string // "development" or "production"; governs cookie Secure
	ListenAddr    string
}

var cfg appConfig

// loadConfig reads configuration from the environment. Secrets fall back to
// development defaults so the server can start locally without a .env file.
func loadConfig() {
	cfg.AccessSecret = []byte(envOr("ACCESS_SECRET", "dev-insecure-access-secret"))
	cfg.RefreshSecret = []byte(envOr("REFRESH_SECRET", "dev-insecure-refresh-secret"))
	cfg.Environment = envOr("APP_ENV", "development")
	cfg.ListenAddr = envOr("LISTEN_ADDR", ":8081")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
