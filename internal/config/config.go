package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/Skotchmaster/ecommerce_api/pkg/config"
)

type ServiceConfig struct {
	config.Config
}

// LoadEnvFile merges a dotenv file into the process environment. Variables
// that are already set win.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

func Load() ServiceConfig {
	if err := LoadEnvFile(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	return ServiceConfig{Config: cfg}
}

func (c ServiceConfig) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
