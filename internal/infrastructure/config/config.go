package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Mongo   MongoConfig
}

type APIConfig struct {
	BaseURL        string `env:"GYM_API_URL,     default=https://localhost:5001/api"`
	TimeoutSeconds int    `env:"GYM_API_TIMEOUT, default=15"`
}

type SessionConfig struct {
	TTLHours int `env:"SESSION_TTL_HOURS, default=24"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=gym_admin"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// APITimeout returns the upstream client timeout as a duration.
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// SessionTTL returns the session credential lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}

// Production reports whether the process runs in a production environment;
// controls cookie Secure flags and log formatting.
func (c *Config) Production() bool {
	return c.Env == "production"
}
