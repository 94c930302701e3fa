package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,   default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	DSN          string        `env:"DATABASE_URL, default=postgres://localhost:5432/taskquest?sslmode=disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS, default=10"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS, default=5"`
	ConnTimeout  time.Duration `env:"DB_CONN_TIMEOUT,   default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
