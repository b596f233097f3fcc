// Package imdb reads parental guides and title listings from IMDb pages.
package imdb

import (
	"parentsguide-srv/internal/advisory"
	"parentsguide-srv/pkg/http"
	"parentsguide-srv/pkg/log"
)

// Config - Adapter configuration
type Config struct {
	BaseURL       string
	MobileBaseURL string
	PopularLimit  int
	SearchLimit   int
}

// DefaultConfig - Default configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:       "https://www.imdb.com",
		MobileBaseURL: "https://m.imdb.com",
		PopularLimit:  50,
		SearchLimit:   20,
	}
}

type implFetcher struct {
	client http.IClient
	l      log.Logger
	cfg    Config
}

// New - Factory function
func New(client http.IClient, l log.Logger, cfg Config) advisory.Fetcher {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.MobileBaseURL == "" {
		cfg.MobileBaseURL = def.MobileBaseURL
	}
	if cfg.PopularLimit <= 0 {
		cfg.PopularLimit = def.PopularLimit
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = def.SearchLimit
	}
	return &implFetcher{client: client, l: l, cfg: cfg}
}
