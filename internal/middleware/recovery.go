package middleware

import (
	"parentsguide-srv/pkg/log"
	"parentsguide-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery recovers from panics, logs them and reports them to Sentry.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
