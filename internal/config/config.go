package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "8000"
	DefaultInventoryFile   = "inventory.json"
	DefaultReorderQuantity = 50
	DefaultCORSOrigins     = "http://localhost, http://localhost:8501"
)

type Config struct {
	Port            string
	InventoryFile   string
	ReorderQuantity int
	CORSOrigins     string
	Env             string
}

// Load reads .env (if present) and then the process environment.
// The returned bool is false when no .env file was found.
func Load() (*Config, bool) {
	envLoaded := godotenv.Load() == nil

	cfg := &Config{
		Port:            getEnv("PORT", DefaultPort),
		InventoryFile:   getEnv("INVENTORY_FILE", DefaultInventoryFile),
		ReorderQuantity: DefaultReorderQuantity,
		CORSOrigins:     getEnv("CORS_ORIGINS", DefaultCORSOrigins),
		Env:             getEnv("APP_ENV", "production"),
	}

	if v := os.Getenv("REORDER_QUANTITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ReorderQuantity = n
		}
	}

	return cfg, envLoaded
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
