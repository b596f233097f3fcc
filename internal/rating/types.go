package rating

import "parentsguide-srv/internal/model"

// RateInput is raw advisory data keyed by category name.
type RateInput struct {
	ContentID string
	Title     string
	// Categories maps a category name to its advisory text.
	Categories map[string]string
	// Votes maps a category name to a severity label; a vote overrides the text.
	Votes        map[string]string
	Certificates model.CertificateMap
}
