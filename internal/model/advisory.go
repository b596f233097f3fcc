package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("model: unknown advisory category")
	ErrUnknownSeverity = errors.New("model: unknown severity")
)

// Category is one of the parental-guide advisory categories.
type Category string

const (
	CategoryNudity      Category = "nudity"
	CategoryViolence    Category = "violence"
	CategoryProfanity   Category = "profanity"
	CategoryFrightening Category = "frightening"
	CategoryAlcohol     Category = "alcohol"
	// CategorySpoilers is shown to users but never weighted.
	CategorySpoilers Category = "spoilers"
)

// ScoredCategories lists the weighted categories in presentation order.
var ScoredCategories = []Category{
	CategoryNudity,
	CategoryViolence,
	CategoryProfanity,
	CategoryFrightening,
	CategoryAlcohol,
}

// AllCategories is ScoredCategories followed by spoilers.
var AllCategories = append(append([]Category{}, ScoredCategories...), CategorySpoilers)

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryNudity, CategoryViolence, CategoryProfanity,
		CategoryFrightening, CategoryAlcohol, CategorySpoilers:
		return true
	}
	return false
}

// Scored reports whether c contributes to the score.
func (c Category) Scored() bool {
	return c.Valid() && c != CategorySpoilers
}

// Title returns the capitalized name, e.g. "Nudity".
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Severity is an ordered advisory level. The ordinal doubles as the category weight.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityMinimal
	SeverityMild
	SeverityModerate
	SeverityStrong
)

var severityNames = [...]string{"none", "minimal", "mild", "moderate", "strong"}

// String returns the lower-case name.
func (s Severity) String() string {
	if s < SeverityNone || s > SeverityStrong {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Title returns the capitalized name, e.g. "Mild".
func (s Severity) Title() string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Weight is the score contribution of a scored category at this level.
func (s Severity) Weight() int {
	return int(s)
}

// Valid reports whether s is one of the five levels.
func (s Severity) Valid() bool {
	return s >= SeverityNone && s <= SeverityStrong
}

// ParseSeverity accepts level names and IMDb vote labels ("Severe" means strong).
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return SeverityNone, nil
	case "minimal":
		return SeverityMinimal, nil
	case "mild":
		return SeverityMild, nil
	case "moderate":
		return SeverityModerate, nil
	case "strong", "severe":
		return SeverityStrong, nil
	}
	return SeverityNone, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
}

func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// CategorySeverityMap holds one severity per category for a single computation.
type CategorySeverityMap map[Category]Severity

// Clone returns an independent copy.
func (m CategorySeverityMap) Clone() CategorySeverityMap {
	if m == nil {
		return nil
	}
	out := make(CategorySeverityMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Certificate is one regional classification, e.g. {"United States", "R"}.
type Certificate struct {
	Country string `json:"country"`
	Rating  string `json:"rating"`
}

// CertificateMap keeps certificates in the order they were found.
type CertificateMap []Certificate

// Clone returns an independent copy.
func (m CertificateMap) Clone() CertificateMap {
	if m == nil {
		return nil
	}
	return append(CertificateMap{}, m...)
}
