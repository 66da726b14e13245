package output

import (
	"strings"
	"testing"
)

func TestRenderDocument(t *testing.T) {
	doc := BuildCompanyDocument(testCompanyData(), "")

	var sb strings.Builder
	if err := RenderDocument(&sb, doc); err != nil {
		t.Fatalf("RenderDocument failed: %v", err)
	}
	out := sb.String()

	// Every number the document carries must survive rendering.
	for _, want := range []string{
		"PROART",
		"Acme, Inc.",
		"Overall Average",
		"3.42",
		"Section Summary",
		"4.10",
		"+0.30",
		"Strengths",
		"Critical Items",
		DefaultNotice,
		"page 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		s     string
		width int
		align Align
		want  string
	}{
		{"ab", 5, AlignLeft, "ab   "},
		{"ab", 5, AlignRight, "   ab"},
		{"ab", 5, AlignCenter, " ab  "},
		{"abcdef", 3, AlignLeft, "abcdef"},
	}

	for _, tt := range tests {
		if got := pad(tt.s, tt.width, tt.align); got != tt.want {
			t.Errorf("pad(%q, %d, %v) = %q, want %q", tt.s, tt.width, tt.align, got, tt.want)
		}
	}
}
