package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed testpage.html
var testPageHTML []byte

// TestPage - dashboard that drives /test and /test/:movie_id from the browser
func (h *handler) TestPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", testPageHTML)
}
