package imdb

import (
	"context"
	"fmt"
	nethttp "net/http"
	"regexp"

	"parentsguide-srv/internal/advisory"
	"parentsguide-srv/pkg/metrics"
)

// IMDb serves reduced or blocked pages to clients that do not look like a browser.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/109.0.0.0 Safari/537.36",
	"sec-ch-ua":       `"Not A;Brand";v="99", "Chromium";v="109", "Google Chrome";v="109"`,
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

var titleIDPattern = regexp.MustCompile(`tt\d+`)

// get fetches a page and records the outcome under op. Non-200 answers are ErrFetchFailed.
func (f *implFetcher) get(ctx context.Context, op, url string) ([]byte, error) {
	body, status, err := f.client.Get(ctx, url, browserHeaders)
	if err != nil {
		metrics.UpstreamFetch.WithLabelValues(op, "error").Inc()
		return nil, fmt.Errorf("%w: %v", advisory.ErrFetchFailed, err)
	}
	if status != nethttp.StatusOK {
		metrics.UpstreamFetch.WithLabelValues(op, "error").Inc()
		return nil, fmt.Errorf("%w: %s returned %d", advisory.ErrFetchFailed, url, status)
	}
	metrics.UpstreamFetch.WithLabelValues(op, "ok").Inc()
	return body, nil
}

// titleIDFromHref extracts "tt0110912" from links such as "/title/tt0110912/?ref_=chtmvm".
func titleIDFromHref(href string) string {
	return titleIDPattern.FindString(href)
}
