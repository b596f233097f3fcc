package imdb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"parentsguide-srv/internal/advisory"
)

func (f *implFetcher) FetchEpisodeID(ctx context.Context, seriesID string, season, episode int) (string, error) {
	if season < 0 || episode < 1 {
		return "", advisory.ErrEpisodeNotFound
	}

	pageURL := fmt.Sprintf("%s/title/%s/episodes/?season=%d", f.cfg.MobileBaseURL, url.PathEscape(seriesID), season)
	body, err := f.get(ctx, "episodes", pageURL)
	if err != nil {
		f.l.Errorf(ctx, "advisory.imdb.FetchEpisodeID: %s season %d: %v", seriesID, season, err)
		return "", err
	}

	id, err := ParseEpisodeID(bytes.NewReader(body), episode)
	if err != nil {
		f.l.Warnf(ctx, "advisory.imdb.FetchEpisodeID: episode %d not found for %s season %d", episode, seriesID, season)
		return "", err
	}
	f.l.Debugf(ctx, "advisory.imdb.FetchEpisodeID: %s S%dE%d -> %s", seriesID, season, episode, id)
	return id, nil
}

// ParseEpisodeID returns the title id of the 1-based episode in a mobile episode list.
func ParseEpisodeID(r io.Reader, episode int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse episodes: %w", err)
	}

	links := doc.Find("div#eplist a[href]")
	if episode < 1 || episode > links.Length() {
		return "", advisory.ErrEpisodeNotFound
	}
	href, _ := links.Eq(episode - 1).Attr("href")
	id := titleIDFromHref(href)
	if id == "" {
		return "", advisory.ErrEpisodeNotFound
	}
	return id, nil
}
