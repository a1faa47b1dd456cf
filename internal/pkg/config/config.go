package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,          default=8080"`
	Env         string `env:"ENV,           default=development"`
	JWTSecret   string `env:"JWT_SECRET"`
	TokenTTLHrs int    `env:"TOKEN_TTL_HRS, default=24"`
	LogLevel    string `env:"LOG_LEVEL,     default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Media MediaConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=itclub_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// MediaConfig holds the S3-compatible image host settings.
type MediaConfig struct {
	Endpoint      string `env:"MEDIA_ENDPOINT,   default=localhost:9000"`
	AccessKey     string `env:"MEDIA_ACCESS_KEY, default=minioadmin"`
	SecretKey     string `env:"MEDIA_SECRET_KEY, default=minioadmin"`
	Bucket        string `env:"MEDIA_BUCKET,     default=itclub-tasks"`
	UseSSL        bool   `env:"MEDIA_USE_SSL,    default=false"`
	PublicBaseURL string `env:"MEDIA_PUBLIC_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
