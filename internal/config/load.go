package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// EnvPrefix is the prefix for all environment variables read by Load.
const EnvPrefix = "QUILL"

// Load configuration from environment variables and optionally a .env file
// and a config.yaml. Environment variables take precedence over values from
// the config file. Returns a populated Config or an error if loading or
// validation fails.
//
// DATABASE_URL and JWT_SECRET_KEY are accepted as fallbacks for
// QUILL_DATABASE_URL and QUILL_AUTH_JWT_SECRET.
func Load() (*Config, error) {
	// .env never overrides variables already present in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("auth.token_lifetime_minutes", 0)
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults must be bound explicitly for Unmarshal to see them.
	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url: %w", err)
	}
	if err := v.BindEnv("auth.jwt_secret", EnvPrefix+"_AUTH_JWT_SECRET", "JWT_SECRET_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind jwt secret: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
