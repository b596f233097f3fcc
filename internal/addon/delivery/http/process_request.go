package http

import (
	"net/url"
	"strings"

	"parentsguide-srv/internal/advisory"

	"github.com/gin-gonic/gin"
)

const jsonSuffix = ".json"

func trimJSON(s string) string {
	return strings.TrimSuffix(s, jsonSuffix)
}

func (h *handler) processResourceRequest(c *gin.Context) (resourceReq, error) {
	req := resourceReq{
		Type: c.Param("type"),
		ID:   trimJSON(c.Param("id")),
	}
	if err := req.validate(); err != nil {
		return resourceReq{}, err
	}
	return req, nil
}

func (h *handler) processCatalogRequest(c *gin.Context) (catalogReq, error) {
	req := catalogReq{
		Type:  c.Param("type"),
		ID:    trimJSON(c.Param("id")),
		Query: c.Query("query"),
	}
	// Extra arguments arrive as a path segment: "search=disney.json".
	if extra := trimJSON(c.Param("extra")); extra != "" {
		values, err := url.ParseQuery(extra)
		if err == nil && values.Get("search") != "" {
			req.Query = values.Get("search")
		}
	}
	if _, err := advisory.ParseKind(req.Type); err != nil {
		return catalogReq{}, errWrongBody
	}
	return req, nil
}
