package repository

import (
	"context"
	"time"

	"parentsguide-srv/internal/model"
)

// CacheRepository is a shared second-level store for rating results.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetResult returns ErrCacheMiss when nothing is stored for contentID.
	GetResult(ctx context.Context, contentID string) (model.RatingResult, error)
	SaveResult(ctx context.Context, result model.RatingResult, ttl time.Duration) error
}
