package http

import (
	"parentsguide-srv/internal/addon"
	"parentsguide-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the addon HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc addon.UseCase
}

// New - Factory
func New(l log.Logger, uc addon.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
