package httpserver

import (
	"context"
	"fmt"

	"parentsguide-srv/internal/middleware"
	"parentsguide-srv/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return fmt.Errorf("failed to set up core domains: %w", err)
	}

	// Addon clients expect the protocol at the root.
	if err := srv.setupAddonDomain(ctx, srv.gin.Group("")); err != nil {
		return fmt.Errorf("failed to set up addon domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Metrics())

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (any origin, fixed headers)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (any origin, any header)", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))
}
