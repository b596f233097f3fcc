package httpserver

import (
	"errors"

	"parentsguide-srv/config"
	"parentsguide-srv/internal/advisory"
	"parentsguide-srv/internal/rating"
	pkgHTTP "parentsguide-srv/pkg/http"
	"parentsguide-srv/pkg/log"
	pkgRedis "parentsguide-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Application Configuration
	config *config.Config

	// Upstream Configuration
	httpClient pkgHTTP.IClient

	// Cache Configuration (optional)
	redisClient pkgRedis.IRedis

	// Core domains, set up by setupCoreDomains
	fetcher  advisory.Fetcher
	ratingUC rating.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Application Configuration
	Config *config.Config

	// Upstream Configuration
	HTTPClient pkgHTTP.IClient

	// Cache Configuration (nil disables the shared rating cache)
	RedisClient pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Application Configuration
		config: cfg.Config,

		// Upstream Configuration
		httpClient: cfg.HTTPClient,

		// Cache Configuration
		redisClient: cfg.RedisClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Application Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Upstream Configuration
	if srv.httpClient == nil {
		return errors.New("httpClient is required")
	}

	// Cache Configuration (optional)
	if srv.config.Redis.Enabled && srv.redisClient == nil {
		return errors.New("redisClient is required when redis is enabled")
	}

	return nil
}
