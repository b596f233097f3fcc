package engine

import (
	"fmt"
	"strings"
	"time"

	"parentsguide-srv/internal/model"
)

// NoAdvisoryDescription is the description of a degraded result.
const NoAdvisoryDescription = "No parental guide available."

// CategoryInput is the raw advisory for one category. A non-nil Severity was
// already classified upstream and wins over Text.
type CategoryInput struct {
	Text     string
	Severity *model.Severity
}

// AssembleInput is everything the engine needs to rate a title.
type AssembleInput struct {
	ContentID    string
	Title        string
	Categories   map[model.Category]CategoryInput
	Certificates model.CertificateMap
	// Now stamps ComputedAt; zero means time.Now.
	Now time.Time
}

// Outcome is a rating together with the soft warnings raised while computing it.
type Outcome struct {
	Result   model.RatingResult
	Unmapped []model.Certificate
}

// Assemble rates a title. Categories missing from the input default to none.
// An input with no categories and no certificates yields the degraded result.
// Unknown category keys are a contract violation and return model.ErrUnknownCategory.
func Assemble(in AssembleInput) (Outcome, error) {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	if len(in.Categories) == 0 && len(in.Certificates) == 0 {
		return Outcome{Result: Degraded(in.ContentID, in.Title, now)}, nil
	}

	severities := make(model.CategorySeverityMap, len(model.AllCategories))
	for _, c := range model.ScoredCategories {
		severities[c] = model.SeverityNone
	}
	for c, raw := range in.Categories {
		if !c.Valid() {
			return Outcome{}, fmt.Errorf("%w: %q", model.ErrUnknownCategory, string(c))
		}
		severities[c] = resolveSeverity(raw)
	}

	score := Score(severities)
	contentAge := AgeForScore(score)
	certAge, hasCert, unmapped := CertificateAge(in.Certificates)

	result := model.RatingResult{
		ContentID:          in.ContentID,
		Title:              in.Title,
		ContentDescription: Describe(severities, in.Certificates),
		AgeRating:          Combine(contentAge, certAge, hasCert),
		ContentAge:         contentAge,
		Score:              score,
		ContentCategories:  severities,
		Certificates:       in.Certificates.Clone(),
		Reasons:            Reasons(severities),
		ComputedAt:         now,
	}
	if result.Certificates == nil {
		result.Certificates = model.CertificateMap{}
	}
	if hasCert {
		result.CertificateAge = &certAge
	}

	return Outcome{Result: result, Unmapped: unmapped}, nil
}

// Degraded is the well-formed result for a title with no advisory data.
func Degraded(contentID, title string, now time.Time) model.RatingResult {
	severities := make(model.CategorySeverityMap, len(model.ScoredCategories))
	for _, c := range model.ScoredCategories {
		severities[c] = model.SeverityNone
	}
	return model.RatingResult{
		ContentID:          contentID,
		Title:              title,
		ContentDescription: NoAdvisoryDescription,
		AgeRating:          model.MinAge,
		ContentAge:         model.MinAge,
		ContentCategories:  severities,
		Certificates:       model.CertificateMap{},
		Reasons:            []model.Reason{},
		Degraded:           true,
		ComputedAt:         now,
	}
}

// Reasons lists the scored categories above none, in presentation order.
func Reasons(severities model.CategorySeverityMap) []model.Reason {
	reasons := make([]model.Reason, 0, len(model.ScoredCategories))
	for _, c := range model.ScoredCategories {
		if s := severities[c]; s != model.SeverityNone {
			reasons = append(reasons, model.Reason{Category: c, Severity: s})
		}
	}
	return reasons
}

// Describe renders the severities and certificates as labeled text blocks:
//
//	[NUDITY]
//	Mild
//
//	[CERTIFICATES]
//	United States: PG-13
func Describe(severities model.CategorySeverityMap, certs model.CertificateMap) string {
	var b strings.Builder
	for _, c := range model.AllCategories {
		s, ok := severities[c]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "[%s]\n%s\n\n", strings.ToUpper(string(c)), s.Title())
	}

	b.WriteString("[CERTIFICATES]\n")
	if len(certs) == 0 {
		b.WriteString("None\n")
	}
	for _, cert := range certs {
		fmt.Fprintf(&b, "%s: %s\n", cert.Country, cert.Rating)
	}
	return b.String()
}

func resolveSeverity(in CategoryInput) model.Severity {
	if in.Severity != nil && in.Severity.Valid() {
		return *in.Severity
	}
	return Classify(in.Text)
}
