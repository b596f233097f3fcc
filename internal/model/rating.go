package model

import (
	"strings"
	"time"
)

// Age thresholds produced from a content score.
const (
	MinAge = 6
	MaxAge = 18
)

// Reason is a category that contributed to the rating.
type Reason struct {
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
}

// String renders "Nudity (mild)".
func (r Reason) String() string {
	return r.Category.Title() + " (" + r.Severity.String() + ")"
}

// RatingResult is the immutable outcome of rating one title.
type RatingResult struct {
	ContentID          string              `json:"content_id"`
	Title              string              `json:"title"`
	ContentDescription string              `json:"content_description"`
	AgeRating          int                 `json:"age_rating"`
	ContentAge         int                 `json:"content_age"`
	CertificateAge     *int                `json:"certificate_age,omitempty"`
	Score              int                 `json:"score"`
	ContentCategories  CategorySeverityMap `json:"content_categories"`
	Certificates       CertificateMap      `json:"certificates"`
	Reasons            []Reason            `json:"reasons"`
	Degraded           bool                `json:"degraded"`
	ComputedAt         time.Time           `json:"computed_at"`
}

// ReasonText joins the reasons, or says the title suits all ages.
func (r RatingResult) ReasonText() string {
	if len(r.Reasons) == 0 {
		return "Suitable for all ages"
	}
	parts := make([]string, 0, len(r.Reasons))
	for _, reason := range r.Reasons {
		parts = append(parts, reason.String())
	}
	return strings.Join(parts, ", ")
}

// Clone returns a copy that shares no maps or slices with r.
func (r RatingResult) Clone() RatingResult {
	out := r
	out.ContentCategories = r.ContentCategories.Clone()
	out.Certificates = r.Certificates.Clone()
	if r.Reasons != nil {
		out.Reasons = append([]Reason{}, r.Reasons...)
	}
	if r.CertificateAge != nil {
		age := *r.CertificateAge
		out.CertificateAge = &age
	}
	return out
}
