// Package config loads the server configuration from a yaml file and the
// environment.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all server settings. Values come from the yaml file named
// by CONFIG_PATH with environment overrides; without a file, environment
// variables and defaults apply.
type Config struct {
	Server struct {
		Host string `yaml:"host" env:"SERVER_HOST" env-default:""`
		Port int    `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path" env:"DB_PATH" env-default:"./data/recipes.db"`
	} `yaml:"database"`

	Auth struct {
		// JWTSecret signs session tokens; must be set in production.
		JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
		// SessionMinutes is how long a login stays valid.
		SessionMinutes int `yaml:"session_minutes" env:"SESSION_MINUTES" env-default:"30"`
	} `yaml:"auth"`

	Uploads struct {
		// Backend selects where images go: "local" or "s3".
		Backend string `yaml:"backend" env:"UPLOADS_BACKEND" env-default:"local"`
		// Dir is the local uploads directory (local backend).
		Dir string `yaml:"dir" env:"UPLOADS_DIR" env-default:"./data/uploads"`

		S3 struct {
			Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
			Region    string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
			Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
			AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
			SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
			Prefix    string `yaml:"prefix" env:"S3_PREFIX" env-default:"uploads"`
		} `yaml:"s3"`
	} `yaml:"uploads"`
}

// Load reads configuration from CONFIG_PATH if set, falling back to
// environment variables only.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}
