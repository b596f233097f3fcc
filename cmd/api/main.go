package main

import (
	"context"
	"fmt"

	"parentsguide-srv/config"
	configRedis "parentsguide-srv/config/redis"
	"parentsguide-srv/internal/httpserver"
	pkgHTTP "parentsguide-srv/pkg/http"
	"parentsguide-srv/pkg/log"
	pkgRedis "parentsguide-srv/pkg/redis"
	"parentsguide-srv/pkg/telemetry"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize Sentry (optional)
	ctx := context.Background()
	enabled, err := telemetry.InitSentry(telemetry.Config{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Environment.Name,
		Release:     cfg.Sentry.Release,
		ServiceName: httpserver.ServiceName,
	})
	if err != nil {
		logger.Warnf(ctx, "Sentry not initialized (optional): %v", err)
	} else if enabled {
		logger.Infof(ctx, "Sentry initialized for environment %s", cfg.Environment.Name)
		defer telemetry.Flush()
	}

	// 4. Initialize Redis (optional shared rating cache)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer func() {
			if err := configRedis.Disconnect(); err != nil {
				logger.Warnf(ctx, "Failed to disconnect Redis: %v", err)
			}
		}()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 5. Initialize upstream HTTP client
	httpClient := pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout:   cfg.IMDb.Timeout,
		Retries:   cfg.IMDb.Retries,
		RetryWait: cfg.IMDb.RetryWait,
	})

	// 6. Initialize HTTP server
	// Serves the addon protocol, the self-test pages and system routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Application Configuration
		Config: cfg,

		// Upstream Configuration
		HTTPClient: httpClient,

		// Cache Configuration
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	logger.Infof(ctx, "Allowed age: %d, rating cache TTL: %s", cfg.Guide.AllowedAge, cfg.Guide.CacheTTL)
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
