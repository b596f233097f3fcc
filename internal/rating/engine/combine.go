package engine

import "parentsguide-srv/internal/model"

// Combine blends the content age with the certificate age 50/50, rounding half
// up. Without a certificate age the content age stands. The result is clamped
// to the supported age range.
func Combine(contentAge, certificateAge int, hasCertificate bool) int {
	age := contentAge
	if hasCertificate {
		age = roundHalfUpMean(contentAge+certificateAge, 2)
	}
	return clampAge(age)
}

func clampAge(age int) int {
	switch {
	case age < model.MinAge:
		return model.MinAge
	case age > model.MaxAge:
		return model.MaxAge
	}
	return age
}
