package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"log-router/pkg/router"
)

type Config struct {
	router.Config
	KafkaBroker  string        `env:"KAFKA_BROKER" envDefault:"localhost:9092"`
	KafkaTopic   string        `env:"KAFKA_TOPIC" envDefault:"logs"`
	GroupID      string        `env:"KAFKA_GROUP_ID" envDefault:"log-router"`
	BatchSize    int           `env:"KAFKA_BATCH_SIZE" envDefault:"100"`
	BatchTimeout time.Duration `env:"KAFKA_BATCH_TIMEOUT" envDefault:"1s"`
}

func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	return load(env.Options{})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.BatchSize < 1 {
		return Config{}, fmt.Errorf("KAFKA_BATCH_SIZE must be positive, got %d", cfg.BatchSize)
	}
	return cfg, nil
}
