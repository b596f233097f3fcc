package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "parentsguide-srv/pkg/errors"
	"parentsguide-srv/pkg/telemetry"
)

// OK writes a 200 response wrapped in Resp.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// JSON writes data as-is, without the Resp envelope. Addon clients expect bare documents.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Error renders err. HTTPErrors keep their status and message; anything else is reported
// and rendered as a 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	telemetry.CaptureError(err, map[string]string{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	})
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

// PanicError renders a recovered panic as a 500 and reports it.
func PanicError(c *gin.Context, rec any) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", rec)
	}
	telemetry.CaptureError(err, map[string]string{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"panic":  "true",
	})
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

// ErrorBody renders err as a bare {"error": message} document. HTTPErrors keep their
// status; anything else is reported and rendered as a 500.
func ErrorBody(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, gin.H{"error": httpErr.Message})
		return
	}

	telemetry.CaptureError(err, map[string]string{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	})
	c.JSON(http.StatusInternalServerError, gin.H{"error": MessageInternalError})
}
