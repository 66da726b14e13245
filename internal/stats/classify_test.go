package stats

import (
	"testing"

	"github.com/proartlab/proart/internal/survey"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		avg  float64
		want Band
	}{
		{5, BandGood},
		{4.5, BandGood},
		{4, BandGood}, // boundary is inclusive
		{3.99, BandModerate},
		{3, BandModerate},
		{2.99, BandCritical},
		{1, BandCritical},
		{0, BandCritical}, // empty pool classifies as critical
	}

	for _, tt := range tests {
		if got := Classify(tt.avg); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.avg, got, tt.want)
		}
	}
}

func TestClassifyWithThresholds(t *testing.T) {
	strict := Thresholds{Good: 4.5, Moderate: 3.5}

	tests := []struct {
		avg  float64
		want Band
	}{
		{4.5, BandGood},
		{4.4, BandModerate},
		{3.5, BandModerate},
		{3.4, BandCritical},
	}

	for _, tt := range tests {
		if got := ClassifyWithThresholds(tt.avg, strict); got != tt.want {
			t.Errorf("ClassifyWithThresholds(%v) = %v, want %v", tt.avg, got, tt.want)
		}
	}
}

func TestBandLabel(t *testing.T) {
	if BandGood.Label() != "Good" || BandModerate.Label() != "Moderate" || BandCritical.Label() != "Critical" {
		t.Error("band labels wrong")
	}
}

func TestOriented(t *testing.T) {
	plain := survey.Section{ID: "a"}
	inverted := survey.Section{ID: "b", Inverted: true}

	tests := []struct {
		sec  survey.Section
		in   float64
		want float64
	}{
		{plain, 4.2, 4.2},
		{plain, 1, 1},
		{inverted, 1, 5},
		{inverted, 5, 1},
		{inverted, 3, 3}, // midpoint is a fixed point
		{inverted, 4.2, 1.8},
	}

	for _, tt := range tests {
		got := Oriented(tt.sec, tt.in)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Oriented(%s, %v) = %v, want %v", tt.sec.ID, tt.in, got, tt.want)
		}
	}
}

func TestOrientedClassification(t *testing.T) {
	// A low raw average on an inverted section is a good outcome.
	inverted := survey.Section{ID: "b", Inverted: true}

	if got := Classify(Oriented(inverted, 1.5)); got != BandGood {
		t.Errorf("raw 1.5 on inverted section = %v, want good", got)
	}
	if got := Classify(Oriented(inverted, 4.5)); got != BandCritical {
		t.Errorf("raw 4.5 on inverted section = %v, want critical", got)
	}
}
