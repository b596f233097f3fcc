package addon

import (
	"parentsguide-srv/internal/advisory"
	"parentsguide-srv/internal/model"
)

const (
	// IDPrefix marks ids minted by this addon.
	IDPrefix = "gpg"

	CatalogPopularMovies = "gpg_movies_catalog"
	CatalogPopularSeries = "gpg_series_catalog"
	CatalogSearchMovies  = "gpg_search_movie"
	CatalogSearchSeries  = "gpg_search_series"
)

// Manifest describes the addon to clients.
type Manifest struct {
	ID          string
	Version     string
	Name        string
	Description string
	Catalogs    []ManifestCatalog
	Types       []string
	Resources   []ManifestResource
}

type ManifestCatalog struct {
	Type string
	ID   string
	Name string
}

type ManifestResource struct {
	Name       string
	Types      []string
	IDPrefixes []string
}

type MetaInput struct {
	Type string
	ID   string
}

type MetaOutput struct {
	ID          string
	Type        string
	Name        string
	Description string
	AgeRating   int
	Reason      string
}

type StreamInput struct {
	Type string
	ID   string
}

type StreamOutput struct {
	Streams []Stream
}

type Stream struct {
	Name        string
	ExternalURL string
}

type CatalogInput struct {
	Type  string
	ID    string
	Query string
}

type CatalogOutput struct {
	Metas []CatalogMeta
}

type CatalogMeta struct {
	ID        string
	Type      string
	Name      string
	AgeRating int
}

// Check statuses.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// SelfTestReport is the result of the built-in smoke checks.
type SelfTestReport struct {
	Status        string
	AllowedAge    int
	Checks        []Check
	OverallStatus string
}

type Check struct {
	Name     string
	Endpoint string
	Status   string
	Details  string
	Error    string
}

// TitleReport is the rating detail of one title with the gate decision.
type TitleReport struct {
	Result    model.RatingResult
	IsAllowed bool
}

// KindForCatalog reports which listing a catalog id serves.
func KindForCatalog(id string) (kind advisory.Kind, search bool, ok bool) {
	switch id {
	case CatalogPopularMovies:
		return advisory.KindMovie, false, true
	case CatalogPopularSeries:
		return advisory.KindSeries, false, true
	case CatalogSearchMovies:
		return advisory.KindMovie, true, true
	case CatalogSearchSeries:
		return advisory.KindSeries, true, true
	}
	return "", false, false
}
