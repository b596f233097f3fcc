package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Guide - age gate and rating cache
	Guide GuideConfig

	// IMDb - advisory source
	IMDb IMDbConfig

	// Catalog - popular/search listings
	Catalog CatalogConfig

	// Redis - optional second-level rating cache
	Redis RedisConfig

	// Monitoring
	Sentry SentryConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GuideConfig controls gating and rating memoization.
type GuideConfig struct {
	// AllowedAge is the highest age rating that is let through. ALLOWED_AGE overrides it.
	AllowedAge int
	CacheTTL   time.Duration
}

// IMDbConfig is the configuration for the IMDb advisory adapter.
type IMDbConfig struct {
	BaseURL       string
	MobileBaseURL string
	Timeout       time.Duration
	Retries       int
	RetryWait     time.Duration
}

// CatalogConfig bounds catalog listings.
type CatalogConfig struct {
	PopularLimit int
	SearchLimit  int
	Concurrency  int
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// SentryConfig is the configuration for Sentry. Empty DSN disables reporting.
type SentryConfig struct {
	DSN     string
	Release string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("guide-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/parentsguide/")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("guide.allowed_age", "ALLOWED_AGE"); err != nil {
		return nil, fmt.Errorf("bind ALLOWED_AGE: %w", err)
	}

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough to run.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Guide
	cfg.Guide.AllowedAge = v.GetInt("guide.allowed_age")
	cfg.Guide.CacheTTL = v.GetDuration("guide.cache_ttl")

	// IMDb
	cfg.IMDb.BaseURL = strings.TrimRight(v.GetString("imdb.base_url"), "/")
	cfg.IMDb.MobileBaseURL = strings.TrimRight(v.GetString("imdb.mobile_base_url"), "/")
	cfg.IMDb.Timeout = v.GetDuration("imdb.timeout")
	cfg.IMDb.Retries = v.GetInt("imdb.retries")
	cfg.IMDb.RetryWait = v.GetDuration("imdb.retry_wait")

	// Catalog
	cfg.Catalog.PopularLimit = v.GetInt("catalog.popular_limit")
	cfg.Catalog.SearchLimit = v.GetInt("catalog.search_limit")
	cfg.Catalog.Concurrency = v.GetInt("catalog.concurrency")

	// Redis
	cfg.Redis.Enabled = v.GetBool("redis.enabled")
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Sentry
	cfg.Sentry.DSN = v.GetString("sentry.dsn")
	cfg.Sentry.Release = v.GetString("sentry.release")

	return cfg
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	// Guide
	v.SetDefault("guide.allowed_age", 18)
	v.SetDefault("guide.cache_ttl", time.Hour)

	// IMDb
	v.SetDefault("imdb.base_url", "https://www.imdb.com")
	v.SetDefault("imdb.mobile_base_url", "https://m.imdb.com")
	v.SetDefault("imdb.timeout", 10*time.Second)
	v.SetDefault("imdb.retries", 1)
	v.SetDefault("imdb.retry_wait", 500*time.Millisecond)

	// Catalog
	v.SetDefault("catalog.popular_limit", 50)
	v.SetDefault("catalog.search_limit", 20)
	v.SetDefault("catalog.concurrency", 8)

	// Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	if cfg.Guide.AllowedAge < 0 {
		return fmt.Errorf("guide.allowed_age must not be negative")
	}
	if cfg.Guide.CacheTTL <= 0 {
		return fmt.Errorf("guide.cache_ttl must be greater than 0")
	}

	if cfg.IMDb.BaseURL == "" {
		return fmt.Errorf("imdb.base_url is required")
	}
	if cfg.IMDb.MobileBaseURL == "" {
		return fmt.Errorf("imdb.mobile_base_url is required")
	}
	if cfg.IMDb.Timeout <= 0 {
		return fmt.Errorf("imdb.timeout must be greater than 0")
	}
	if cfg.IMDb.Retries < 0 {
		return fmt.Errorf("imdb.retries must not be negative")
	}

	if cfg.Catalog.PopularLimit <= 0 {
		return fmt.Errorf("catalog.popular_limit must be greater than 0")
	}
	if cfg.Catalog.SearchLimit <= 0 {
		return fmt.Errorf("catalog.search_limit must be greater than 0")
	}
	if cfg.Catalog.Concurrency <= 0 {
		return fmt.Errorf("catalog.concurrency must be greater than 0")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required when redis.enabled")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required when redis.enabled")
		}
	}

	return nil
}
