package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Admin      AdminConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	RateLimit  RateLimitConfig
	Scheduling SchedulingConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

// AdminConfig identifies the single console operator
type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt
	FullName     string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Enabled reports whether a database is configured
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis server is configured
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type SchedulingConfig struct {
	StrictTransitions bool
	ProfileSaveDelay  time.Duration
	Today             string // YYYY-MM-DD, empty means the current date
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ADMIN_EMAIL", "admin@hospital.com")
	viper.SetDefault("ADMIN_FULL_NAME", "Hospital Admin")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	if err := viper.ReadInConfig(); err != nil {
		// running from the environment alone is fine
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	saveDelay, err := time.ParseDuration(viper.GetString("PROFILE_SAVE_DELAY"))
	if err != nil {
		saveDelay = 0
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		Admin: AdminConfig{
			Email:        viper.GetString("ADMIN_EMAIL"),
			PasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
			FullName:     viper.GetString("ADMIN_FULL_NAME"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
		Scheduling: SchedulingConfig{
			StrictTransitions: viper.GetBool("APPOINTMENT_STRICT_TRANSITIONS"),
			ProfileSaveDelay:  saveDelay,
			Today:             viper.GetString("SEED_TODAY"),
		},
	}

	return config, nil
}
