package config

import (
	"fmt"
	"time"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultHTTPTimeout = 10 * time.Second

// Config holds the process configuration, read from the environment and an optional .env file.
type Config struct {
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	BaseUrl     string        `mapstructure:"POKEAPI_BASE_URL"`
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
	Region      string        `mapstructure:"AWS_REGION"`
	BucketName  string        `mapstructure:"BUCKET_NAME"`
	Handler     string        `mapstructure:"_HANDLER"`
	ServerAddr  string        `mapstructure:"SERVER_ADDR"`
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("POKEAPI_BASE_URL", pokeapi.DefaultBaseUrl)
	v.SetDefault("HTTP_TIMEOUT", DefaultHTTPTimeout)
	v.SetDefault("AWS_REGION", "")
	v.SetDefault("BUCKET_NAME", "")
	v.SetDefault("_HANDLER", "")
	v.SetDefault("SERVER_ADDR", ":8080")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT %s (must be positive)", cfg.HTTPTimeout)
	}
	return &cfg, nil
}
