// Package config materializes process configuration from the environment.
// A .env file is loaded first when present, then envconfig fills the
// Config struct with defaults applied.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8080"`

	MongoURL            string        `envconfig:"MONGO_URL" default:"mongodb://localhost:27017"`
	DBName              string        `envconfig:"DB_NAME" default:"medovik"`
	MongoConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`

	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string `envconfig:"LOG_FORMAT" default:"json"`
	LogOutput       string `envconfig:"LOG_OUTPUT" default:"stdout"`
	LogEnableCaller bool   `envconfig:"LOG_ENABLE_CALLER" default:"false"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`

	// Admin credential material. Either a precomputed salted SHA-256
	// hash (hex) or, for development only, a plain password hashed at
	// startup. Never embedded in source.
	AdminUsername     string `envconfig:"ADMIN_USERNAME"`
	AdminPassword     string `envconfig:"ADMIN_PASSWORD"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
	AdminPasswordSalt string `envconfig:"ADMIN_PASSWORD_SALT"`
}

// Load reads the .env file at path (missing file is not an error) and
// resolves the configuration from the environment.
func Load(path string) (Config, error) {
	// Best effort; real deployments set the environment directly.
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
