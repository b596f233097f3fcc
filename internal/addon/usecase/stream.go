package usecase

import (
	"context"
	"fmt"
	"strings"

	"parentsguide-srv/internal/addon"
	"parentsguide-srv/pkg/metrics"
)

const streamName = "Parents Guide"

// Stream - link from a playable title to its parental guide page
func (uc *implUseCase) Stream(ctx context.Context, input addon.StreamInput) (addon.StreamOutput, error) {
	id := normalizeStreamID(input.ID)
	if strings.Contains(id, addon.IDPrefix) {
		return addon.StreamOutput{}, addon.ErrNotFound
	}

	contentID := contentIDFromStream(id)
	if contentID == "" {
		return addon.StreamOutput{}, addon.ErrInvalidID
	}

	r, err := uc.ratingUC.GetRating(ctx, contentID)
	if err != nil {
		// Unrated titles stay hidden.
		uc.l.Warnf(ctx, "addon.usecase.Stream: blocking %s, no rating: %v", id, err)
		metrics.GateDecisions.WithLabelValues("block").Inc()
		return addon.StreamOutput{}, &addon.BlockedError{AllowedAge: uc.cfg.AllowedAge}
	}
	if err := uc.gate(r.AgeRating); err != nil {
		uc.l.Infof(ctx, "addon.usecase.Stream: blocking stream for %s with age rating %d", id, r.AgeRating)
		return addon.StreamOutput{}, err
	}

	if input.Type == "series" {
		series, season, episode, ok := seasonEpisode(id)
		if !ok {
			return addon.StreamOutput{}, addon.ErrNotFound
		}
		epID, err := uc.fetcher.FetchEpisodeID(ctx, series, season, episode)
		if err != nil {
			uc.l.Warnf(ctx, "addon.usecase.Stream: episode id for %s: %v", id, err)
			return addon.StreamOutput{}, addon.ErrNotFound
		}
		id = id + "-" + epID
	}

	return addon.StreamOutput{
		Streams: []addon.Stream{{
			Name:        streamName,
			ExternalURL: fmt.Sprintf("stremio:///detail/%s/%s-%s", input.Type, addon.IDPrefix, id),
		}},
	}, nil
}
