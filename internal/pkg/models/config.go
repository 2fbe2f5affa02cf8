package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Paystack  PaystackConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int // in seconds
}

// DatabaseConfig contains database connection configuration.
// Driver is either "sqlite3" (Path is used) or "pgx" (DSN is used).
type DatabaseConfig struct {
	Driver    string
	Path      string
	DSN       string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Enabled reports whether a Redis host has been configured
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// PaystackConfig contains payment gateway configuration
type PaystackConfig struct {
	SecretKey   string
	BaseURL     string
	CallbackURL string
	Timeout     time.Duration
}

// RateLimitConfig contains rate limiting configuration for payment initialization
type RateLimitConfig struct {
	Requests int
	Period   time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
