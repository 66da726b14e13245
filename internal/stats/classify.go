package stats

import "github.com/proartlab/proart/internal/survey"

// Band is the qualitative classification of an oriented average.
type Band string

const (
	// BandGood: average >= 4.0
	BandGood Band = "good"
	// BandModerate: 3.0 <= average < 4.0
	BandModerate Band = "moderate"
	// BandCritical: average < 3.0
	BandCritical Band = "critical"
)

// Label returns the display label for the band.
func (b Band) Label() string {
	switch b {
	case BandGood:
		return "Good"
	case BandModerate:
		return "Moderate"
	default:
		return "Critical"
	}
}

// Thresholds contains the classification cut-offs.
type Thresholds struct {
	Good     float64 // Default: 4.0
	Moderate float64 // Default: 3.0
}

// DefaultThresholds returns the standard PROART classification cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{Good: 4.0, Moderate: 3.0}
}

// Classify returns the band for an already-oriented average.
// The policy itself is orientation-agnostic: callers transform values
// from inverted sections through Oriented first.
func Classify(average float64) Band {
	return ClassifyWithThresholds(average, DefaultThresholds())
}

// ClassifyWithThresholds returns the band using custom cut-offs.
func ClassifyWithThresholds(average float64, t Thresholds) Band {
	switch {
	case average >= t.Good:
		return BandGood
	case average >= t.Moderate:
		return BandModerate
	default:
		return BandCritical
	}
}

// Oriented transforms a raw value so that higher always means a better
// outcome: values from inverted sections are reflected across the scale
// midpoint (6 - v), others pass through unchanged.
//
// The transform is applied only at ranking and display time. Stored and
// reported raw averages are never altered.
func Oriented(sec survey.Section, v float64) float64 {
	if sec.Inverted {
		return float64(survey.ScaleMin+survey.ScaleMax) - v
	}
	return v
}
