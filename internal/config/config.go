package config

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// URL selects the driver by scheme: postgres:// or postgresql:// use pgx,
	// sqlite: uses the embedded SQLite driver.
	URL          string `mapstructure:"url"            validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
	// AutoMigrate applies pending migrations at boot.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
	// TokenLifetimeMinutes of 0 issues tokens without an exp claim.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"gte=0"`
	BcryptCost           int `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`
}
