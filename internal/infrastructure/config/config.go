package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// LockTimeout bounds how long a status update waits for a contended
	// parcel before returning 503.
	LockTimeout time.Duration `env:"LOCK_TIMEOUT, default=1500ms"`

	// AuditWorkers is the number of async audit-trail workers.
	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	// SeedDemoData seeds the demo courier registry at startup.
	// Intended for development environments only.
	SeedDemoData bool `env:"SEED_DEMO_DATA, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=parcel_tracking"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
