package config

import (
	"log"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. When APP_ENV is
// "local" (the default) the env file at configPath is loaded first; variables
// already present in the process environment win over the file.
func InitConfig(configPath string) *models.Config {
	env := viper.New()
	env.AutomaticEnv()
	env.SetDefault("APP_ENV", "local")

	if env.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfigFromEnv(newEnvReader())
}

func newEnvReader() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "payment-api")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_PORT", 3000)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	// PORT is the conventional platform override for the listen port
	_ = v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT")

	v.SetDefault("DB_DRIVER", "sqlite3")
	v.SetDefault("DB_PATH", "./db/payments.db")

	v.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	v.SetDefault("PAYSTACK_CALLBACK_URL", "http://localhost:3000/verify-payment")
	v.SetDefault("PAYSTACK_TIMEOUT", "30s")

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("RATE_LIMIT_REQUESTS", 30)
	v.SetDefault("RATE_LIMIT_PERIOD", "1m")

	v.SetDefault("JWT_ISSUER", "payment-api")

	v.SetDefault("LOG_LEVEL", "info")

	return v
}

func loadConfigFromEnv(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Path = v.GetString("DB_PATH")
	configs.Database.DSN = v.GetString("DB_DSN")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Paystack config; a missing secret key only surfaces on the first gateway call
	configs.Paystack.SecretKey = v.GetString("PAYSTACK_SECRET_KEY")
	configs.Paystack.BaseURL = v.GetString("PAYSTACK_BASE_URL")
	configs.Paystack.CallbackURL = v.GetString("PAYSTACK_CALLBACK_URL")
	configs.Paystack.Timeout = durationOr(v, "PAYSTACK_TIMEOUT", 30*time.Second)

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Rate limit config
	configs.RateLimit.Requests = v.GetInt("RATE_LIMIT_REQUESTS")
	configs.RateLimit.Period = durationOr(v, "RATE_LIMIT_PERIOD", time.Minute)

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d := v.GetDuration(key)
	if d <= 0 {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, fallback)
		return fallback
	}
	return d
}
