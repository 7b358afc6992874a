package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is loaded once at startup and injected; nothing reads the
// environment after Load returns.
type Config struct {
	Port    string
	Env     string
	DBHost  string
	DBPort  string
	DBUser  string
	DBPass  string
	DBName  string
	SSLMode string

	// AuthToken is the single shared secret checked by the bearer gate.
	AuthToken string

	DBMaxRetries int
}

func Load() (Config, error) {
	cfg := Config{
		Port:         getenv("PORT", "5000"),
		Env:          getenv("APP_ENV", "production"),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       getenv("DB_USER", "postgres"),
		DBPass:       os.Getenv("DB_PASSWORD"),
		DBName:       getenv("DB_NAME", "employee_dashboard"),
		SSLMode:      getenv("DB_SSLMODE", "disable"),
		AuthToken:    os.Getenv("AUTH_TOKEN"),
		DBMaxRetries: 5,
	}

	if v := os.Getenv("DB_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid DB_MAX_RETRIES %q", v)
		}
		cfg.DBMaxRetries = n
	}

	if cfg.AuthToken == "" {
		return Config{}, fmt.Errorf("AUTH_TOKEN required")
	}

	return cfg, nil
}

// IsDevelopment reports whether error responses may carry details.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
