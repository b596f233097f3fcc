package imdb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"parentsguide-srv/internal/advisory"
)

func (f *implFetcher) Search(ctx context.Context, query string, kind advisory.Kind) ([]advisory.Title, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []advisory.Title{}, nil
	}

	ttype := "ft"
	if kind == advisory.KindSeries {
		ttype = "tv"
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("s", "tt")
	q.Set("ttype", ttype)

	body, err := f.get(ctx, "search", fmt.Sprintf("%s/find/?%s", f.cfg.BaseURL, q.Encode()))
	if err != nil {
		f.l.Errorf(ctx, "advisory.imdb.Search: %q: %v", query, err)
		return nil, err
	}

	titles, err := ParseSearch(bytes.NewReader(body), f.cfg.SearchLimit)
	if err != nil {
		f.l.Errorf(ctx, "advisory.imdb.Search: parse %q: %v", query, err)
		return nil, err
	}
	f.l.Infof(ctx, "advisory.imdb.Search: %d results for %q (%s)", len(titles), query, kind)
	return titles, nil
}

// ParseSearch reads a /find results page, up to limit titles. Parenthesized
// suffixes such as "(1994)" are stripped from names.
func ParseSearch(r io.Reader, limit int) ([]advisory.Title, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse search: %w", err)
	}

	links := doc.Find("li.find-result-item a.ipc-metadata-list-summary-item__t")
	if links.Length() > 0 {
		return collectTitles(links, limit, func(a *goquery.Selection) string {
			return cleanRating(a.Text())
		}), nil
	}

	// Older table layout: the name lives in the row's result_text cell.
	return collectTitles(doc.Find("tr.findResult td.result_text a"), limit, func(a *goquery.Selection) string {
		return cleanRating(a.Closest("td.result_text").Text())
	}), nil
}
