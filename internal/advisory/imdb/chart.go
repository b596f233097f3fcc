package imdb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"parentsguide-srv/internal/advisory"
)

var rankPrefix = regexp.MustCompile(`^\d+\.\s*`)

func (f *implFetcher) FetchPopular(ctx context.Context, kind advisory.Kind) ([]advisory.Title, error) {
	chart := "moviemeter"
	if kind == advisory.KindSeries {
		chart = "tvmeter"
	}

	body, err := f.get(ctx, "popular", fmt.Sprintf("%s/chart/%s", f.cfg.BaseURL, chart))
	if err != nil {
		f.l.Errorf(ctx, "advisory.imdb.FetchPopular: %s: %v", chart, err)
		return nil, err
	}

	titles, err := ParseChart(bytes.NewReader(body), f.cfg.PopularLimit)
	if err != nil {
		f.l.Errorf(ctx, "advisory.imdb.FetchPopular: parse %s: %v", chart, err)
		return nil, err
	}
	f.l.Infof(ctx, "advisory.imdb.FetchPopular: fetched %d popular %s titles", len(titles), kind)
	return titles, nil
}

// ParseChart reads a /chart page, up to limit distinct titles. Both the current
// list layout and the older table layout are understood.
func ParseChart(r io.Reader, limit int) ([]advisory.Title, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse chart: %w", err)
	}

	links := doc.Find("li.ipc-metadata-list-summary-item a.ipc-title-link-wrapper")
	if links.Length() == 0 {
		links = doc.Find("td.titleColumn a")
	}
	return collectTitles(links, limit, func(s *goquery.Selection) string {
		return rankPrefix.ReplaceAllString(cleanText(s.Text()), "")
	}), nil
}

// collectTitles keeps the first occurrence of each title id, in page order.
func collectTitles(links *goquery.Selection, limit int, name func(*goquery.Selection) string) []advisory.Title {
	seen := make(map[string]bool)
	titles := make([]advisory.Title, 0, limit)
	links.EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		id := titleIDFromHref(href)
		if id == "" || seen[id] {
			return true
		}
		seen[id] = true

		n := strings.TrimSpace(name(a))
		if n == "" {
			n = advisory.UnknownTitle
		}
		titles = append(titles, advisory.Title{ID: id, Name: n})
		return len(titles) < limit
	})
	return titles
}
