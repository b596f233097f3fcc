package usecase

import (
	"context"
	"fmt"

	"parentsguide-srv/internal/addon"
	"parentsguide-srv/internal/advisory"
)

// Well-known titles at both ends of the rating scale.
const (
	familyTitleID = "tt0910970" // WALL-E
	matureTitleID = "tt0110912" // Pulp Fiction
	searchProbe   = "disney"
)

// SelfTest - smoke checks over the manifest, rating, search and catalog paths
func (uc *implUseCase) SelfTest(ctx context.Context) addon.SelfTestReport {
	checks := []addon.Check{
		uc.checkManifest(),
		uc.checkRating(ctx, "Family Content Check", familyTitleID, "WALL-E"),
		uc.checkRating(ctx, "Mature Content Check", matureTitleID, "Pulp Fiction"),
		uc.checkListing(ctx, "Search Function Check", "/catalog/movie/"+addon.CatalogSearchMovies+"?query="+searchProbe,
			func() ([]advisory.Title, error) { return uc.fetcher.Search(ctx, searchProbe, advisory.KindMovie) }),
		uc.checkListing(ctx, "Catalog Function Check", "/catalog/movie/"+addon.CatalogPopularMovies,
			func() ([]advisory.Title, error) { return uc.fetcher.FetchPopular(ctx, advisory.KindMovie) }),
	}

	overall := addon.StatusPassed
	for _, c := range checks {
		if c.Status == addon.StatusFailed {
			overall = addon.StatusFailed
			break
		}
	}

	return addon.SelfTestReport{
		Status:        "running",
		AllowedAge:    uc.cfg.AllowedAge,
		Checks:        checks,
		OverallStatus: overall,
	}
}

// TestTitle - rating detail of one title with the gate decision
func (uc *implUseCase) TestTitle(ctx context.Context, contentID string) (addon.TitleReport, error) {
	r, err := uc.ratingUC.GetRating(ctx, contentID)
	if err != nil {
		uc.l.Errorf(ctx, "addon.usecase.TestTitle: GetRating %s: %v", contentID, err)
		return addon.TitleReport{}, err
	}
	return addon.TitleReport{Result: r, IsAllowed: uc.isAllowed(r.AgeRating)}, nil
}

func (uc *implUseCase) checkManifest() addon.Check {
	c := addon.Check{Name: "Manifest Check", Endpoint: "/manifest.json"}
	if m := uc.Manifest(); m.ID == "" || len(m.Catalogs) == 0 {
		c.Status = addon.StatusFailed
		c.Error = "manifest is incomplete"
		return c
	}
	c.Status = addon.StatusPassed
	c.Details = "Manifest available"
	return c
}

func (uc *implUseCase) checkRating(ctx context.Context, name, contentID, label string) addon.Check {
	c := addon.Check{Name: name, Endpoint: fmt.Sprintf("/meta/movie/%s-%s", addon.IDPrefix, contentID)}
	r, err := uc.ratingUC.GetRating(ctx, contentID)
	if err != nil {
		c.Status = addon.StatusFailed
		c.Error = err.Error()
		return c
	}
	c.Status = addon.StatusPassed
	c.Details = fmt.Sprintf("%s age rating: %d", label, r.AgeRating)
	if r.Degraded {
		c.Details += " (no parental guide available)"
	}
	return c
}

func (uc *implUseCase) checkListing(ctx context.Context, name, endpoint string, list func() ([]advisory.Title, error)) addon.Check {
	c := addon.Check{Name: name, Endpoint: endpoint}
	items, err := list()
	if err != nil {
		uc.l.Warnf(ctx, "addon.usecase.SelfTest: %s: %v", name, err)
		c.Status = addon.StatusFailed
		c.Error = err.Error()
		return c
	}
	c.Status = addon.StatusPassed
	c.Details = fmt.Sprintf("Found %d items", len(items))
	return c
}
