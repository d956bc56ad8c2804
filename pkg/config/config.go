package config

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Config holds everything the process reads from the environment. It is
// loaded once in main and handed to the pieces that need it, so nothing
// else touches os.Getenv.
type Config struct {
	Port            string
	DatabaseURL     string
	StripeSecretKey string
	Currency        string
	SiteName        string
	SiteURL         string
	AllowedOrigins  []string
}

func Load() *Config {
	cfg := &Config{
		Port:            getenv("PORT", "8000"),
		DatabaseURL:     databaseURL(),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Currency:        getenv("CURRENCY", "usd"),
		SiteName:        getenv("SITE_NAME", "NS Market"),
		SiteURL:         getenv("SITE_URL", "http://localhost:3000"),
		AllowedOrigins:  splitOrigins(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	// Missing backing services are logged, not fatal: the board degrades
	// to empty and checkout answers 503.
	if cfg.DatabaseURL == "" {
		log.Println("database configuration missing (DATABASE_URL or DB_* vars), listings will be empty")
	}
	if cfg.StripeSecretKey == "" {
		log.Println("STRIPE_SECRET_KEY not set, checkout endpoints are disabled")
	}

	return cfg
}

func (c *Config) PaymentsEnabled() bool {
	return c.StripeSecretKey != ""
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, os.Getenv("DB_PORT"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, strings.TrimRight(o, "/"))
		}
	}
	return origins
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
