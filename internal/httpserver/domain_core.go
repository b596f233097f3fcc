package httpserver

import (
	"context"

	"parentsguide-srv/internal/advisory/imdb"
	"parentsguide-srv/internal/rating/repository"
	ratingRedis "parentsguide-srv/internal/rating/repository/redis"
	ratingUsecase "parentsguide-srv/internal/rating/usecase"
)

func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	srv.fetcher = imdb.New(srv.httpClient, srv.l, imdb.Config{
		BaseURL:       srv.config.IMDb.BaseURL,
		MobileBaseURL: srv.config.IMDb.MobileBaseURL,
		PopularLimit:  srv.config.Catalog.PopularLimit,
		SearchLimit:   srv.config.Catalog.SearchLimit,
	})

	var cacheRepo repository.CacheRepository
	if srv.redisClient != nil {
		cacheRepo = ratingRedis.New(srv.redisClient, srv.l)
	}

	srv.ratingUC = ratingUsecase.New(srv.fetcher, cacheRepo, srv.l, ratingUsecase.Config{
		CacheTTL: srv.config.Guide.CacheTTL,
	})

	srv.l.Infof(ctx, "Core domains (Advisory, Rating) initialized, shared cache: %t", cacheRepo != nil)
	return nil
}
