package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	addonHTTP "parentsguide-srv/internal/addon/delivery/http"
	addonUsecase "parentsguide-srv/internal/addon/usecase"
)

func (srv *HTTPServer) setupAddonDomain(ctx context.Context, r *gin.RouterGroup) error {
	uc := addonUsecase.New(srv.ratingUC, srv.fetcher, srv.l, addonUsecase.Config{
		AllowedAge:  srv.config.Guide.AllowedAge,
		Concurrency: srv.config.Catalog.Concurrency,
	})

	handler := addonHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Addon domain registered, allowed age: %d", uc.AllowedAge())
	return nil
}
