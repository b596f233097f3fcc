package advisory

import "context"

// Fetcher reads advisory data and title listings from an upstream source.
// Implementations are safe for concurrent use.
//
//go:generate mockery --name Fetcher
type Fetcher interface {
	// FetchAdvisory returns ErrFetchFailed when the page cannot be retrieved and
	// ErrNoAdvisory when it has no advisory section.
	FetchAdvisory(ctx context.Context, contentID string) (Advisory, error)
	FetchPopular(ctx context.Context, kind Kind) ([]Title, error)
	Search(ctx context.Context, query string, kind Kind) ([]Title, error)
	// FetchEpisodeID resolves a 1-based season/episode of a series to its own title id.
	FetchEpisodeID(ctx context.Context, seriesID string, season, episode int) (string, error)
}
