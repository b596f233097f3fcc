package engine

import "testing"

func TestCombine(t *testing.T) {
	tests := []struct {
		name    string
		content int
		cert    int
		hasCert bool
		want    int
	}{
		{name: "no certificate", content: 13, want: 13},
		{name: "exact mean", content: 10, cert: 16, hasCert: true, want: 13},
		{name: "half rounds up", content: 10, cert: 13, hasCert: true, want: 12},
		{name: "clamped low", content: 6, cert: 0, hasCert: true, want: 6},
		{name: "clamped high", content: 18, cert: 21, hasCert: true, want: 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(tt.content, tt.cert, tt.hasCert); got != tt.want {
				t.Errorf("Combine(%d, %d, %v) = %d, want %d", tt.content, tt.cert, tt.hasCert, got, tt.want)
			}
		})
	}
}
