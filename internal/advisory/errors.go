package advisory

import "errors"

var (
	ErrFetchFailed     = errors.New("advisory: fetch failed")
	ErrNoAdvisory      = errors.New("advisory: no parental guide on page")
	ErrEpisodeNotFound = errors.New("advisory: episode not found")
	ErrUnknownKind     = errors.New("advisory: unknown content kind")
)
