package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"parentsguide-srv/internal/addon"
	"parentsguide-srv/internal/advisory"
)

// Catalog - popular or searched titles that pass the age gate
// Flow: list titles → rate each (bounded concurrency, shared rating cache) → filter → keep list order
func (uc *implUseCase) Catalog(ctx context.Context, input addon.CatalogInput) (addon.CatalogOutput, error) {
	kind, search, ok := addon.KindForCatalog(input.ID)
	if !ok {
		return addon.CatalogOutput{}, addon.ErrInvalidCatalog
	}

	var (
		titles []advisory.Title
		err    error
	)
	if search {
		query := strings.TrimSpace(input.Query)
		if query == "" {
			return addon.CatalogOutput{Metas: []addon.CatalogMeta{}}, nil
		}
		titles, err = uc.fetcher.Search(ctx, query, kind)
	} else {
		titles, err = uc.fetcher.FetchPopular(ctx, kind)
	}
	if err != nil {
		// Listing failures show as an empty catalog.
		uc.l.Warnf(ctx, "addon.usecase.Catalog: listing %s: %v", input.ID, err)
		return addon.CatalogOutput{Metas: []addon.CatalogMeta{}}, nil
	}

	return addon.CatalogOutput{Metas: uc.rateAndFilter(ctx, input.Type, titles)}, nil
}

func (uc *implUseCase) rateAndFilter(ctx context.Context, typ string, titles []advisory.Title) []addon.CatalogMeta {
	ages := make([]int, len(titles))
	rated := make([]bool, len(titles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.Concurrency)
	for i, t := range titles {
		g.Go(func() error {
			r, err := uc.ratingUC.GetRating(gctx, t.ID)
			if err != nil {
				uc.l.Warnf(gctx, "addon.usecase.Catalog: skipping %s: %v", t.ID, err)
				return nil
			}
			ages[i], rated[i] = r.AgeRating, true
			return nil
		})
	}
	_ = g.Wait()

	metas := make([]addon.CatalogMeta, 0, len(titles))
	for i, t := range titles {
		if !rated[i] || uc.gate(ages[i]) != nil {
			continue
		}
		metas = append(metas, addon.CatalogMeta{
			ID:        addon.IDPrefix + "-" + t.ID,
			Type:      typ,
			Name:      t.Name,
			AgeRating: ages[i],
		})
	}
	return metas
}
