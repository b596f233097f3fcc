package engine

import (
	"strconv"
	"strings"

	"parentsguide-srv/internal/model"
)

// Codes without digits. Looked up verbatim after trimming.
var alphabeticCertificates = map[string]int{
	"U":     0,
	"G":     0,
	"TP":    0,
	"AL":    0,
	"ATP":   0,
	"L":     0,
	"Btl":   0,
	"E":     0,
	"TV-G":  0,
	"PG":    8,
	"TV-PG": 8,
	"UA":    12,
	"M":     15,
	"R":     17,
	"TV-MA": 17,
	"X":     18,
	"III":   18,
}

// NormalizeCertificate returns the age a certificate string stands for. The
// first run of digits wins ("PG-13" is 13); otherwise the alphabetic table is
// consulted. ok is false for unmappable values such as "Not Rated".
func NormalizeCertificate(raw string) (age int, ok bool) {
	if digits := firstDigitRun(raw); digits != "" {
		n, err := strconv.Atoi(digits)
		if err == nil {
			return n, true
		}
	}
	age, ok = alphabeticCertificates[strings.TrimSpace(raw)]
	return age, ok
}

// CertificateAge is the round-half-up mean of every mappable certificate.
// unmapped lists the entries that were skipped, in encounter order.
func CertificateAge(certs model.CertificateMap) (age int, ok bool, unmapped []model.Certificate) {
	sum, n := 0, 0
	for _, c := range certs {
		v, mapped := NormalizeCertificate(c.Rating)
		if !mapped {
			unmapped = append(unmapped, c)
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false, unmapped
	}
	return roundHalfUpMean(sum, n), true, unmapped
}

func firstDigitRun(s string) string {
	start := -1
	for i := 0; i < len(s); i++ {
		isDigit := s[i] >= '0' && s[i] <= '9'
		switch {
		case isDigit && start < 0:
			start = i
		case !isDigit && start >= 0:
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}
	return ""
}

// roundHalfUpMean computes round(sum/n) with .5 rounded up, for sum >= 0 and n > 0.
func roundHalfUpMean(sum, n int) int {
	return (2*sum + n) / (2 * n)
}
