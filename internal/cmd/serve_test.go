package cmd

import (
	"testing"
	"time"
)

func TestNormalizeToolName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"companies", "proart_companies"},
		{"proart_companies", "proart_companies"},
		{"section_summary", "proart_section_summary"},
	}

	for _, tt := range tests {
		if got := normalizeToolName(tt.in); got != tt.want {
			t.Errorf("normalizeToolName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"", 0, false},
		{"0", 0, false},
		{"30m", 30 * time.Minute, false},
		{"1h30m", 90 * time.Minute, false},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		got, err := parseDuration(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
