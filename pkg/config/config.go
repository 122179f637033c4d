package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Currency  string          `mapstructure:"currency" validate:"required,len=3"`
	Snapshots SnapshotsConfig `mapstructure:"snapshots"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type SnapshotsConfig struct {
	S3   S3Config   `mapstructure:"s3"`
	AMQP AMQPConfig `mapstructure:"amqp"`
}

// S3Config enables the snapshot archive when Bucket is set
type S3Config struct {
	Bucket  string `mapstructure:"bucket"`
	Prefix  string `mapstructure:"prefix"`
	Profile string `mapstructure:"profile"`
}

// AMQPConfig enables snapshot events when URL is set
type AMQPConfig struct {
	URL      string `mapstructure:"url" validate:"omitempty,url"`
	Exchange string `mapstructure:"exchange" validate:"required_with=URL"`
	Queue    string `mapstructure:"queue" validate:"required_with=URL"`
}

var defaults = map[string]any{
	"server.host":             "localhost",
	"server.port":             "8080",
	"database.path":           "offer-atlas.db",
	"currency":                "EUR",
	"snapshots.s3.bucket":     "",
	"snapshots.s3.prefix":     "snapshots",
	"snapshots.s3.profile":    "",
	"snapshots.amqp.url":      "",
	"snapshots.amqp.exchange": "offers",
	"snapshots.amqp.queue":    "offer.signed",
}

// LoadConfig reads the service configuration. Environment variables such as SERVER_PORT or
// SNAPSHOTS_S3_BUCKET override file values. An empty path uses defaults and environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
