package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port            string
	Environment     string
	MongoURI        string
	MongoDB         string
	StripeSecretKey string
	FrontendURL     string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		Environment:     getEnv("APP_ENV", "development"),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         getEnv("MONGO_DB", "RannaFy"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.MongoURI == "" || cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
