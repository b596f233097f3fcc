package advisory

import (
	"strings"

	"parentsguide-srv/internal/model"
)

// Kind is the catalog type of a title.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

// ParseKind accepts "movie" and "series".
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMovie, KindSeries:
		return Kind(s), nil
	}
	return "", ErrUnknownKind
}

// UnknownTitle is used when a page carries no usable title.
const UnknownTitle = "Unknown Title"

// Advisory is the parsed parental guide of one title.
type Advisory struct {
	ContentID    string
	Title        string
	Categories   map[model.Category]CategoryAdvisory
	Certificates model.CertificateMap
}

// CategoryAdvisory is the raw content of one advisory section.
type CategoryAdvisory struct {
	Items []string
	// Vote is the community severity label ("None", "Mild", "Moderate", "Severe"), if shown.
	Vote string
}

// Text joins the items one per line.
func (c CategoryAdvisory) Text() string {
	return strings.Join(c.Items, "\n")
}

// Title is a listing entry from a chart or search.
type Title struct {
	ID   string
	Name string
}
