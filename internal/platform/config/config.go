package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers selectable through STORAGE_DRIVER.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	StorageDriver  string
	MigrationsPath string
	JWTSecret      string
	JWTIssuer      string
	RateLimit      string   // ulule formatted, e.g. "100-M"
	AllowedOrigins []string // CORS origins; "*" allows any
	// Ledger and listing defaults
	LedgerWindowDays int
	DefaultPageSize  int
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Values from a .env file are overridden by real environment variables.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "money-tracker")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LEDGER_DEFAULT_WINDOW_DAYS", 30)
	v.SetDefault("DEFAULT_PAGE_SIZE", 20)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		StorageDriver:    strings.ToLower(v.GetString("STORAGE_DRIVER")),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		AllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LedgerWindowDays: v.GetInt("LEDGER_DEFAULT_WINDOW_DAYS"),
		DefaultPageSize:  v.GetInt("DEFAULT_PAGE_SIZE"),
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER=%s", StorageDriverPostgres)
		}
	case StorageDriverMemory:
		log.Println("Warning: STORAGE_DRIVER=memory, data will not survive a restart.")
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.LedgerWindowDays <= 0 {
		log.Printf("Warning: Invalid LEDGER_DEFAULT_WINDOW_DAYS (%d). Defaulting to 30.\n", cfg.LedgerWindowDays)
		cfg.LedgerWindowDays = 30
	}
	if cfg.DefaultPageSize <= 0 || cfg.DefaultPageSize > 100 {
		log.Printf("Warning: Invalid DEFAULT_PAGE_SIZE (%d). Defaulting to 20.\n", cfg.DefaultPageSize)
		cfg.DefaultPageSize = 20
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
