package usecase

import (
	"parentsguide-srv/internal/addon"
	"parentsguide-srv/internal/advisory"
	"parentsguide-srv/internal/rating"
	"parentsguide-srv/pkg/log"
)

// Config - UseCase configuration
type Config struct {
	AllowedAge int
	// Concurrency bounds how many catalog items are rated at once.
	Concurrency int
}

// DefaultConfig - Default configuration
func DefaultConfig() Config {
	return Config{
		AllowedAge:  18,
		Concurrency: 8,
	}
}

type implUseCase struct {
	ratingUC rating.UseCase
	fetcher  advisory.Fetcher
	l        log.Logger
	cfg      Config
}

// New - Factory function
func New(ratingUC rating.UseCase, fetcher advisory.Fetcher, l log.Logger, cfg Config) addon.UseCase {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConfig().Concurrency
	}
	return &implUseCase{
		ratingUC: ratingUC,
		fetcher:  fetcher,
		l:        l,
		cfg:      cfg,
	}
}

func (uc *implUseCase) AllowedAge() int {
	return uc.cfg.AllowedAge
}
