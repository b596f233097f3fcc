package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig lists what cross-origin callers may do.
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}

// DefaultCORSConfig opens the API to any origin: addon clients run on arbitrary hosts.
// Outside production the preflight also allows every header used by local tooling.
func DefaultCORSConfig(environment string) CORSConfig {
	cfg := CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}
	if environment == "production" {
		cfg.AllowHeaders = []string{"Accept", "Content-Type", "X-Request-ID"}
	}
	return cfg
}

func (cfg CORSConfig) allowsOrigin(origin string) bool {
	return slices.Contains(cfg.AllowOrigins, "*") || slices.Contains(cfg.AllowOrigins, origin)
}

// CORS sets the CORS headers and answers preflight requests.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && cfg.allowsOrigin(origin) {
			if slices.Contains(cfg.AllowOrigins, "*") {
				c.Header("Access-Control-Allow-Origin", "*")
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
