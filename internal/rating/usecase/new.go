package usecase

import (
	"time"

	"parentsguide-srv/internal/advisory"
	"parentsguide-srv/internal/model"
	"parentsguide-srv/internal/rating"
	"parentsguide-srv/internal/rating/repository"
	"parentsguide-srv/pkg/log"
	"parentsguide-srv/pkg/memo"
)

// Config - UseCase configuration
type Config struct {
	CacheTTL time.Duration
	// Now stamps results; nil means time.Now.
	Now func() time.Time
}

// DefaultConfig - Default configuration
func DefaultConfig() Config {
	return Config{CacheTTL: time.Hour}
}

type implUseCase struct {
	fetcher advisory.Fetcher
	// cacheRepo is nil when the shared cache is disabled.
	cacheRepo repository.CacheRepository
	cache     *memo.Cache[model.RatingResult]
	l         log.Logger
	cfg       Config
}

// New - Factory function. cacheRepo may be nil.
func New(fetcher advisory.Fetcher, cacheRepo repository.CacheRepository, l log.Logger, cfg Config) rating.UseCase {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultConfig().CacheTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implUseCase{
		fetcher:   fetcher,
		cacheRepo: cacheRepo,
		cache:     memo.New[model.RatingResult](memo.WithClock(cfg.Now)),
		l:         l,
		cfg:       cfg,
	}
}
