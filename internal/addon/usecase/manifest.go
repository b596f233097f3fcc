package usecase

import "parentsguide-srv/internal/addon"

var manifest = addon.Manifest{
	ID:          "com.beast.getparentsguide",
	Version:     "1.3.0",
	Name:        "Get Parents Guide",
	Description: "Fetch parents guide and block content based on age rating",
	Catalogs: []addon.ManifestCatalog{
		{Type: "movie", ID: addon.CatalogPopularMovies, Name: "Filtered Movies Catalog"},
		{Type: "series", ID: addon.CatalogPopularSeries, Name: "Filtered Series Catalog"},
		{Type: "movie", ID: addon.CatalogSearchMovies, Name: "Filtered Movie Search"},
		{Type: "series", ID: addon.CatalogSearchSeries, Name: "Filtered Series Search"},
	},
	Types: []string{"movie", "series"},
	Resources: []addon.ManifestResource{
		{Name: "meta", Types: []string{"series", "movie"}, IDPrefixes: []string{"gpg"}},
		{Name: "stream", Types: []string{"movie", "series"}, IDPrefixes: []string{"tt", "gpg"}},
		{Name: "catalog", Types: []string{"movie", "series"}, IDPrefixes: []string{"gpg_catalog", "gpg_search"}},
	},
}

func (uc *implUseCase) Manifest() addon.Manifest {
	return manifest
}
