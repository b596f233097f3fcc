package engine

import (
	"testing"

	"parentsguide-srv/internal/model"
)

func TestNormalizeCertificate(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{raw: "16", want: 16, wantOK: true},
		{raw: "PG-13", want: 13, wantOK: true},
		{raw: "R-16", want: 16, wantOK: true},
		{raw: "M18", want: 18, wantOK: true},
		{raw: "T18", want: 18, wantOK: true},
		{raw: "12A", want: 12, wantOK: true},
		{raw: "R", want: 17, wantOK: true},
		{raw: "M", want: 15, wantOK: true},
		{raw: "III", want: 18, wantOK: true},
		{raw: " PG ", want: 8, wantOK: true},
		{raw: "G", want: 0, wantOK: true},
		{raw: "TV-MA", want: 17, wantOK: true},
		{raw: "", wantOK: false},
		{raw: "Not Rated", wantOK: false},
		{raw: "Unrated", wantOK: false},
		{raw: "r", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeCertificate(tt.raw)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("NormalizeCertificate(%q) = %d, %v; want %d, %v", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCertificateAge(t *testing.T) {
	tests := []struct {
		name         string
		certs        model.CertificateMap
		want         int
		wantOK       bool
		wantUnmapped int
	}{
		{
			name:   "exact mean",
			certs:  model.CertificateMap{{Country: "A", Rating: "16"}, {Country: "B", Rating: "18"}},
			want:   17,
			wantOK: true,
		},
		{
			name:   "half rounds up",
			certs:  model.CertificateMap{{Country: "A", Rating: "12"}, {Country: "B", Rating: "15"}},
			want:   14,
			wantOK: true,
		},
		{
			name:   "below half rounds down",
			certs:  model.CertificateMap{{Country: "A", Rating: "12"}, {Country: "B", Rating: "12"}, {Country: "C", Rating: "13"}},
			want:   12,
			wantOK: true,
		},
		{
			name:         "unmapped skipped",
			certs:        model.CertificateMap{{Country: "A", Rating: "Not Rated"}, {Country: "B", Rating: "R"}},
			want:         17,
			wantOK:       true,
			wantUnmapped: 1,
		},
		{
			name:         "nothing mappable",
			certs:        model.CertificateMap{{Country: "A", Rating: "Approved"}},
			wantOK:       false,
			wantUnmapped: 1,
		},
		{
			name:   "empty",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, unmapped := CertificateAge(tt.certs)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("CertificateAge() = %d, %v; want %d, %v", got, ok, tt.want, tt.wantOK)
			}
			if len(unmapped) != tt.wantUnmapped {
				t.Errorf("unmapped = %v, want %d entries", unmapped, tt.wantUnmapped)
			}
		})
	}
}
