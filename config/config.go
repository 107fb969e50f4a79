package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Auth modes. Firebase is the production path; local validates HS256 tokens
// signed with a shared secret for deployments without Firebase.
const (
	AuthModeFirebase = "firebase"
	AuthModeLocal    = "local"
)

// Config holds all configuration for the application. Values are read once at
// startup and treated as read-only afterwards.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Authentication
	AuthEnabled bool
	AuthMode    string
	JWTSecret   string

	// Firebase / Firestore
	FirebaseProjectID string
	RecipesCollection string
	GoogleCredentials string

	// Redis (optional public-listing cache)
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisURL       string
	RedisDB        int
	PublicCacheTTL time.Duration
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		AuthEnabled: getEnvBool("AUTH_ENABLED", true),
		AuthMode:    getEnv("AUTH_MODE", AuthModeFirebase),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		FirebaseProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
		RecipesCollection: os.Getenv("FIRESTORE_COLLECTION_RECIPES"),
		GoogleCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		PublicCacheTTL: time.Duration(getEnvInt("PUBLIC_CACHE_TTL_SECONDS", 60)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that everything the selected auth mode and the store need
// is present. Missing credentials are fatal at startup, not at first request.
func (c *Config) Validate() error {
	if c.FirebaseProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}
	if c.RecipesCollection == "" {
		return fmt.Errorf("FIRESTORE_COLLECTION_RECIPES is required")
	}
	switch c.AuthMode {
	case AuthModeFirebase:
		if c.GoogleCredentials == "" && os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON") == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS is required in firebase auth mode")
		}
	case AuthModeLocal:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in local auth mode")
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q", c.AuthMode)
	}
	return nil
}

// CacheConfigured reports whether a Redis endpoint was provided.
func (c *Config) CacheConfigured() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
