package rating

import (
	"context"

	"parentsguide-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetRating returns the memoized rating of a title, fetching its advisory on a miss.
	// An unreachable or empty advisory yields a degraded result, not an error.
	GetRating(ctx context.Context, contentID string) (model.RatingResult, error)
	// Rate runs the engine on caller-supplied advisory data. Nothing is cached.
	Rate(ctx context.Context, input RateInput) (model.RatingResult, error)
}
