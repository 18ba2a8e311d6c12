package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"   validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                     int    `mapstructure:"port"                        validate:"required,gt=0,lt=65536"`
	LogLevel                 string `mapstructure:"log_level"                   validate:"required,oneof=debug info warn error"`
	MetricsPort              int    `mapstructure:"metrics_port"                validate:"gte=0,lt=65536"`
	ShutdownTimeoutSeconds   int    `mapstructure:"shutdown_timeout_seconds"    validate:"gt=0"`
	ReadHeaderTimeoutSeconds int    `mapstructure:"read_header_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
	// StartupTimeoutSeconds bounds how long startup waits for the database to accept connections.
	StartupTimeoutSeconds int `mapstructure:"startup_timeout_seconds" validate:"gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
// Tokens carry no expiry, so rotating JWTSecret is the only way to revoke them.
type AuthConfig struct {
	JWTSecret  string `mapstructure:"jwt_secret"  validate:"required,min=32"`
	BcryptCost int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// RateLimitConfig controls the per-client limiter in front of the login endpoint.
// A LoginPerSecond of zero disables limiting.
type RateLimitConfig struct {
	LoginPerSecond float64 `mapstructure:"login_per_second" validate:"gte=0"`
	LoginBurst     int     `mapstructure:"login_burst"      validate:"gte=1"`
}
