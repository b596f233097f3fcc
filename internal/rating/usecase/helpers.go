package usecase

import (
	"time"

	"parentsguide-srv/internal/advisory"
	"parentsguide-srv/internal/model"
	"parentsguide-srv/internal/rating/engine"
)

// toAssembleInput maps a parsed advisory onto engine input. A vote that parses
// becomes a pre-classified severity; otherwise the item text is classified.
func toAssembleInput(contentID string, adv advisory.Advisory, now time.Time) engine.AssembleInput {
	categories := make(map[model.Category]engine.CategoryInput, len(adv.Categories))
	for c, ca := range adv.Categories {
		in := engine.CategoryInput{Text: ca.Text()}
		if ca.Vote != "" {
			if s, err := model.ParseSeverity(ca.Vote); err == nil {
				in.Severity = &s
			}
		}
		categories[c] = in
	}

	title := adv.Title
	if title == "" {
		title = advisory.UnknownTitle
	}

	return engine.AssembleInput{
		ContentID:    contentID,
		Title:        title,
		Categories:   categories,
		Certificates: adv.Certificates,
		Now:          now,
	}
}
