// Package engine turns parental-guide advisory data into an age rating.
// Every function is pure and reads only the package-level tables.
package engine

import (
	"strings"

	"parentsguide-srv/internal/model"
)

type keywordLevel struct {
	severity model.Severity
	keywords []string
}

// Scanned in order; the first level with any substring hit wins.
var keywordLevels = []keywordLevel{
	{model.SeverityStrong, []string{"graphic", "extreme", "intense", "explicit", "severe"}},
	{model.SeverityModerate, []string{"moderate", "several", "blood", "fighting", "partial"}},
	{model.SeverityMild, []string{"mild", "some", "minor", "light", "suggested"}},
	{model.SeverityMinimal, []string{"very mild", "brief", "cartoon", "background", "distant"}},
}

var noneKeywords = []string{"no", "none", "clean", "family-friendly", "children"}

// Classify maps free advisory text to a severity. Text with no recognizable
// keyword, including the empty string, is treated as minimal.
func Classify(text string) model.Severity {
	lower := strings.ToLower(text)

	for _, level := range keywordLevels {
		if containsAny(lower, level.keywords) {
			return level.severity
		}
	}
	if containsAny(lower, noneKeywords) {
		return model.SeverityNone
	}
	return model.SeverityMinimal
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
