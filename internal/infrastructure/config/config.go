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
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Media MediaConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cat_registry"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// MediaConfig configures the upload object store and the location used when
// an uploaded photo carries no GPS data.
type MediaConfig struct {
	Endpoint    string  `env:"MEDIA_ENDPOINT,     default=localhost:9000"`
	AccessKey   string  `env:"MEDIA_ACCESS_KEY"`
	SecretKey   string  `env:"MEDIA_SECRET_KEY"`
	Bucket      string  `env:"MEDIA_BUCKET,       default=cat-uploads"`
	UseSSL      bool    `env:"MEDIA_SSL,          default=false"`
	FallbackLat float64 `env:"MEDIA_FALLBACK_LAT, default=60.1699"`
	FallbackLng float64 `env:"MEDIA_FALLBACK_LNG, default=24.9384"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
