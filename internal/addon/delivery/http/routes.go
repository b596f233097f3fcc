package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the addon protocol and the self-test pages. Addon ids carry a
// ".json" suffix that the handlers strip.
func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	addonRoutes := r.Group("")
	addonRoutes.Use(addonHeaders())
	{
		addonRoutes.GET("/", h.Status)
		addonRoutes.GET("/manifest.json", h.Manifest)
		addonRoutes.GET("/meta/:type/:id", h.Meta)
		addonRoutes.GET("/stream/:type/:id", h.Stream)
		addonRoutes.GET("/catalog/:type/:id", h.Catalog)
		addonRoutes.GET("/catalog/:type/:id/:extra", h.Catalog)
	}

	test := r.Group("")
	test.Use(addonHeaders())
	{
		test.GET("/test", h.SelfTest)
		test.GET("/test/:movie_id", h.TestTitle)
	}
	r.GET("/test-page", h.TestPage)
}

// addonHeaders sets the headers addon clients rely on. Responses may be cached.
func addonHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "*")
		c.Header("Cache-Control", "public, max-age=40000")
		c.Next()
	}
}
