package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"log-router/pkg/router"
)

type Config struct {
	router.Config
}

// LoadConfig reads the process environment, after an optional .env file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	return load(env.Options{})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
