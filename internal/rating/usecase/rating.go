package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"parentsguide-srv/internal/advisory"
	"parentsguide-srv/internal/model"
	"parentsguide-srv/internal/rating"
	"parentsguide-srv/internal/rating/engine"
	"parentsguide-srv/internal/rating/repository"
	"parentsguide-srv/pkg/metrics"
)

// GetRating - cached rating of a title
// Flow: memo cache → shared cache → fetch advisory → engine → shared cache
func (uc *implUseCase) GetRating(ctx context.Context, contentID string) (model.RatingResult, error) {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return model.RatingResult{}, rating.ErrInvalidContentID
	}

	entry, err := uc.cache.GetOrCompute(ctx, contentID, uc.cfg.CacheTTL, func(cctx context.Context) (model.RatingResult, error) {
		return uc.compute(cctx, contentID)
	})
	if err != nil {
		return model.RatingResult{}, err
	}

	if entry.Hit {
		metrics.RatingCache.WithLabelValues("hit").Inc()
	} else {
		metrics.RatingCache.WithLabelValues("miss").Inc()
	}
	return entry.Value.Clone(), nil
}

// Rate - run the engine on supplied advisory data
func (uc *implUseCase) Rate(ctx context.Context, input rating.RateInput) (model.RatingResult, error) {
	categories := make(map[model.Category]engine.CategoryInput, len(input.Categories))
	for name, text := range input.Categories {
		c, err := model.ParseCategory(name)
		if err != nil {
			return model.RatingResult{}, fmt.Errorf("%w: %v", rating.ErrInvalidInput, err)
		}
		in := categories[c]
		in.Text = text
		categories[c] = in
	}
	for name, vote := range input.Votes {
		c, err := model.ParseCategory(name)
		if err != nil {
			return model.RatingResult{}, fmt.Errorf("%w: %v", rating.ErrInvalidInput, err)
		}
		s, err := model.ParseSeverity(vote)
		if err != nil {
			return model.RatingResult{}, fmt.Errorf("%w: %v", rating.ErrInvalidInput, err)
		}
		in := categories[c]
		in.Severity = &s
		categories[c] = in
	}

	return uc.assemble(ctx, engine.AssembleInput{
		ContentID:    input.ContentID,
		Title:        input.Title,
		Categories:   categories,
		Certificates: input.Certificates,
		Now:          uc.cfg.Now(),
	})
}

func (uc *implUseCase) compute(ctx context.Context, contentID string) (model.RatingResult, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetResult(ctx, contentID)
		if err == nil {
			uc.l.Debugf(ctx, "rating.usecase.compute: shared cache hit for %s", contentID)
			return cached, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "rating.usecase.compute: shared cache read failed for %s: %v", contentID, err)
		}
	}

	adv, err := uc.fetcher.FetchAdvisory(ctx, contentID)
	var result model.RatingResult
	if err != nil {
		uc.l.Warnf(ctx, "rating.usecase.compute: no advisory for %s, using degraded rating: %v", contentID, err)
		title := adv.Title
		if title == "" {
			title = advisory.UnknownTitle
		}
		result = engine.Degraded(contentID, title, uc.cfg.Now())
		metrics.RatingComputations.WithLabelValues("degraded").Inc()
	} else {
		result, err = uc.assemble(ctx, toAssembleInput(contentID, adv, uc.cfg.Now()))
		if err != nil {
			return model.RatingResult{}, err
		}
	}

	uc.l.Infof(ctx, "rating.usecase.compute: %s %q rated %d (degraded=%v)", contentID, result.Title, result.AgeRating, result.Degraded)

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SaveResult(ctx, result, uc.cfg.CacheTTL); err != nil {
			uc.l.Warnf(ctx, "rating.usecase.compute: shared cache write failed for %s: %v", contentID, err)
		}
	}
	return result, nil
}

func (uc *implUseCase) assemble(ctx context.Context, in engine.AssembleInput) (model.RatingResult, error) {
	out, err := engine.Assemble(in)
	if err != nil {
		metrics.RatingComputations.WithLabelValues("failed").Inc()
		uc.l.Errorf(ctx, "rating.usecase.assemble: %s: %v", in.ContentID, err)
		return model.RatingResult{}, fmt.Errorf("%w: %v", rating.ErrComputeFailed, err)
	}

	for _, cert := range out.Unmapped {
		uc.l.Warnf(ctx, "rating.usecase.assemble: unmapped certificate %q (%s) for %s", cert.Rating, cert.Country, in.ContentID)
	}
	metrics.UnmappedCertificates.Add(float64(len(out.Unmapped)))

	if out.Result.Degraded {
		metrics.RatingComputations.WithLabelValues("degraded").Inc()
	} else {
		metrics.RatingComputations.WithLabelValues("ok").Inc()
	}
	return out.Result, nil
}
