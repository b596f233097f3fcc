package httpserver

import (
	"net/http"

	"parentsguide-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Parents Guide addon is up"
	HealthVersion = "1.3.0"
	ServiceName   = "parentsguide-srv"
)

// healthCheck handles health check requests
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests. Redis is checked only when enabled.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	redisStatus := "disabled"
	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Redis connection failed",
				"error":   err.Error(),
			})
			return
		}
		redisStatus = "connected"
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"redis":   redisStatus,
	})
}

// liveCheck handles liveness check requests
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
