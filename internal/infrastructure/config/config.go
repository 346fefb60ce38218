package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,       default=8080"`
	Env         string        `env:"ENV,        default=development"`
	JWTSecret   string        `env:"JWT_SECRET, default=dev-secret"`
	SessionTTL  time.Duration `env:"SESSION_TTL, default=24h"`
	LogLevel    string        `env:"LOG_LEVEL,  default=info"`
	SeedOnStart bool          `env:"SEED_ON_START, default=true"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=housing_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
