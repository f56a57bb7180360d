package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/crowdconsole/crowdfund/internal/models"
)

const insecureSecretPlaceholder = "change_me_in_production"

// Config carries every environment-sourced knob. Handlers and services
// receive it explicitly; nothing reads the process environment after Load.
type Config struct {
	SecretKey          string
	DatabasePath       string
	Port               string
	BaseURL            string
	Location           *time.Location
	MaxTargetAmount    int64
	ActivationRequired bool
	CookieSecure       bool
	Debug              bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	secret, err := resolveSecretKey()
	if err != nil {
		return Config{}, err
	}

	maxTarget, err := resolveMaxTargetAmount()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		SecretKey:          secret,
		DatabasePath:       getEnv("DB_PATH", filepath.Join("data", "crowdfund.db")),
		Port:               getEnv("PORT", "8080"),
		BaseURL:            strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		Location:           mustLoadLocation(getEnv("TZ", "Africa/Cairo")),
		MaxTargetAmount:    maxTarget,
		ActivationRequired: getEnvBool("ACTIVATION_REQUIRED", true),
		CookieSecure:       getEnvBool("COOKIE_SECURE", false),
		Debug:              getEnvBool("DEBUG", false),
	}
	return cfg, nil
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY must be set")
	}
	if secret == insecureSecretPlaceholder {
		return "", errors.New("SECRET_KEY still uses the insecure placeholder")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func resolveMaxTargetAmount() (int64, error) {
	raw := strings.TrimSpace(os.Getenv("CROWDFUND_TARGET_MAX"))
	if raw == "" {
		return models.DefaultMaxTargetAmount, nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed < 1 {
		return 0, fmt.Errorf("invalid CROWDFUND_TARGET_MAX %q", raw)
	}
	return parsed, nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return fallback
	}
	return value == "1" || value == "true" || value == "on" || value == "yes"
}
