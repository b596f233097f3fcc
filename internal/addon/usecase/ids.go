package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

const unknownSeasonEpisode = "S00E00"

// normalizeStreamID turns "tt0903747:1:2" (raw or escaped) into "tt0903747_1_2".
func normalizeStreamID(id string) string {
	id = strings.ReplaceAll(id, "%3A", "_")
	id = strings.ReplaceAll(id, "%3a", "_")
	return strings.ReplaceAll(id, ":", "_")
}

// contentIDFromMeta takes the id after the last '-': "gpg-tt0110912" is tt0110912,
// "gpg-tt0903747_1_2-tt1054724" is the episode tt1054724.
func contentIDFromMeta(id string) string {
	return id[strings.LastIndex(id, "-")+1:]
}

// contentIDFromStream takes the id after the last '-' if any, else the series
// part before the first '_'.
func contentIDFromStream(id string) string {
	if strings.Contains(id, "-") {
		return contentIDFromMeta(id)
	}
	return strings.SplitN(id, "_", 2)[0]
}

// seasonEpisode parses "<series>_<season>_<episode>[-<episode id>]".
func seasonEpisode(id string) (series string, season, episode int, ok bool) {
	parts := strings.Split(id, "_")
	if len(parts) < 3 {
		return "", 0, 0, false
	}
	season, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil || season < 0 {
		return "", 0, 0, false
	}
	episode, err = strconv.Atoi(strings.SplitN(parts[len(parts)-1], "-", 2)[0])
	if err != nil || episode < 0 {
		return "", 0, 0, false
	}
	series = parts[0]
	if i := strings.LastIndex(series, "-"); i >= 0 {
		series = series[i+1:]
	}
	return series, season, episode, true
}

// formatSeasonEpisode renders "S01E02", or S00E00 for ids without season and episode.
func formatSeasonEpisode(id string) string {
	_, season, episode, ok := seasonEpisode(id)
	if !ok {
		return unknownSeasonEpisode
	}
	return fmt.Sprintf("S%02dE%02d", season, episode)
}
