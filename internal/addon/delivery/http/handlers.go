package http

import (
	"errors"
	"net/http"
	"strings"

	"parentsguide-srv/internal/addon"
	"parentsguide-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Status - liveness document for addon clients
func (h *handler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, statusResp{Status: "working"})
}

// Manifest - addon manifest
func (h *handler) Manifest(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.newManifestResp(h.uc.Manifest()))
}

// Meta - title detail with its parental guide, 403 when blocked
func (h *handler) Meta(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResourceRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "addon.delivery.http.Meta: processResourceRequest failed: %v", err)
		h.renderError(c, err)
		return
	}

	output, err := h.uc.Meta(ctx, addon.MetaInput{Type: req.Type, ID: req.ID})
	if err != nil {
		h.l.Warnf(ctx, "addon.delivery.http.Meta: usecase Meta failed: %v", err)
		h.renderError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, h.newMetaResp(output))
}

// Stream - link to the parental guide page, 403 when blocked
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResourceRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "addon.delivery.http.Stream: processResourceRequest failed: %v", err)
		h.renderError(c, err)
		return
	}

	output, err := h.uc.Stream(ctx, addon.StreamInput{Type: req.Type, ID: req.ID})
	if err != nil {
		h.l.Warnf(ctx, "addon.delivery.http.Stream: usecase Stream failed: %v", err)
		h.renderError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, h.newStreamsResp(output))
}

// Catalog - popular or searched titles that pass the age gate
func (h *handler) Catalog(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCatalogRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "addon.delivery.http.Catalog: processCatalogRequest failed: %v", err)
		h.renderError(c, err)
		return
	}

	output, err := h.uc.Catalog(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "addon.delivery.http.Catalog: usecase Catalog failed: %v", err)
		h.renderError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, h.newCatalogResp(output))
}

// SelfTest - smoke checks against live upstream data
func (h *handler) SelfTest(c *gin.Context) {
	report := h.uc.SelfTest(c.Request.Context())
	response.JSON(c, http.StatusOK, h.newSelfTestResp(report))
}

// TestTitle - rating detail of one title
func (h *handler) TestTitle(c *gin.Context) {
	ctx := c.Request.Context()

	id := strings.TrimSpace(c.Param("movie_id"))
	report, err := h.uc.TestTitle(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "addon.delivery.http.TestTitle: usecase TestTitle failed: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(h.mapError(err), errInvalidID) {
			status = http.StatusBadRequest
		}
		response.JSON(c, status, gin.H{"status": "error", "error": err.Error()})
		return
	}

	response.JSON(c, http.StatusOK, h.newTitleTestResp(report))
}
