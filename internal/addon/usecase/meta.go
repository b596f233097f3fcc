package usecase

import (
	"context"
	"strings"

	"parentsguide-srv/internal/addon"
)

// descriptionHeader prefixes the advisory text shown on the detail page.
const descriptionHeader = "Parent's Guide:\n"

// Meta - detail page of a title with its parental guide
func (uc *implUseCase) Meta(ctx context.Context, input addon.MetaInput) (addon.MetaOutput, error) {
	contentID := contentIDFromMeta(input.ID)
	if strings.TrimSpace(contentID) == "" {
		return addon.MetaOutput{}, addon.ErrInvalidID
	}

	r, err := uc.ratingUC.GetRating(ctx, contentID)
	if err != nil {
		uc.l.Errorf(ctx, "addon.usecase.Meta: GetRating %s: %v", contentID, err)
		return addon.MetaOutput{}, err
	}

	if err := uc.gate(r.AgeRating); err != nil {
		uc.l.Infof(ctx, "addon.usecase.Meta: blocking %q with age rating %d", r.Title, r.AgeRating)
		return addon.MetaOutput{}, err
	}

	name := r.Title
	if input.Type == "series" {
		name = name + " " + formatSeasonEpisode(input.ID)
	}

	return addon.MetaOutput{
		ID:          input.ID,
		Type:        input.Type,
		Name:        name,
		Description: descriptionHeader + r.ContentDescription,
		AgeRating:   r.AgeRating,
		Reason:      r.ReasonText(),
	}, nil
}
