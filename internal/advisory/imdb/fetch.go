package imdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"

	"parentsguide-srv/internal/advisory"
)

func (f *implFetcher) FetchAdvisory(ctx context.Context, contentID string) (advisory.Advisory, error) {
	pageURL := fmt.Sprintf("%s/title/%s/parentalguide", f.cfg.BaseURL, url.PathEscape(contentID))
	body, err := f.get(ctx, "advisory", pageURL)
	if err != nil {
		f.l.Warnf(ctx, "advisory.imdb.FetchAdvisory: %s: %v", contentID, err)
		return advisory.Advisory{}, err
	}

	adv, err := ParseParentalGuide(bytes.NewReader(body))
	adv.ContentID = contentID
	if err != nil {
		if errors.Is(err, advisory.ErrNoAdvisory) {
			f.l.Warnf(ctx, "advisory.imdb.FetchAdvisory: no parental guide sections for %s", contentID)
		} else {
			f.l.Errorf(ctx, "advisory.imdb.FetchAdvisory: parse %s: %v", contentID, err)
		}
		return adv, err
	}

	f.l.Debugf(ctx, "advisory.imdb.FetchAdvisory: %s %q: %d categories, %d certificates",
		contentID, adv.Title, len(adv.Categories), len(adv.Certificates))
	return adv, nil
}
