// Package survey defines the PROART questionnaire schema and the entities
// it is answered by: sections, questions, companies, and respondents.
// Schema entities are loaded once at startup and are read-only afterwards.
package survey

import (
	"fmt"
	"strings"
)

// Sex is the closed set of declared-sex categories on a respondent.
type Sex string

const (
	// SexMale identifies respondents who declared male.
	SexMale Sex = "male"
	// SexFemale identifies respondents who declared female.
	SexFemale Sex = "female"
	// SexUndeclared identifies respondents who preferred not to declare.
	SexUndeclared Sex = "undeclared"
)

// Sexes lists all sex categories in display order.
var Sexes = []Sex{SexMale, SexFemale, SexUndeclared}

// Label returns the human-readable label for the category.
func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return "Prefer not to declare"
	}
}

// Valid reports whether s is one of the known categories.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale || s == SexUndeclared
}

// ParseSex parses a sex category from its id or display label.
// Parsing is case-insensitive; unknown values map to SexUndeclared
// with an error so callers can decide whether to tolerate them.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	case "undeclared", "", "prefer not to declare":
		return SexUndeclared, nil
	default:
		return SexUndeclared, fmt.Errorf("unknown sex category %q", s)
	}
}

// Section is one of the four thematic pillars of the questionnaire.
// Inverted sections score in the opposite direction: a high raw average
// on their questions indicates a worse outcome.
type Section struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	ShortName string `yaml:"short_name" json:"short_name"`
	Index     int    `yaml:"index" json:"index"`
	Inverted  bool   `yaml:"inverted,omitempty" json:"inverted,omitempty"`
}

// Question is a single questionnaire item. Number is the ordinal position
// within the owning section and drives report row order.
type Question struct {
	ID        string `yaml:"id" json:"id"`
	SectionID string `yaml:"section" json:"section"`
	Number    int    `yaml:"number" json:"number"`
	Text      string `yaml:"text" json:"text"`
}

// Company is an immutable reference entity that respondents belong to.
type Company struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Sector    string `yaml:"sector" json:"sector"`
	Employees int    `yaml:"employees" json:"employees"`
}

// Respondent holds one submitted questionnaire: demographic attributes and
// one answer per question id. Answers are integers in [1,5]; a missing
// entry means the respondent skipped that question. Respondents are
// immutable once stored.
type Respondent struct {
	ID        string         `yaml:"id" json:"id"`
	CompanyID string         `yaml:"company" json:"company"`
	Sex       Sex            `yaml:"sex" json:"sex"`
	Age       int            `yaml:"age" json:"age"`
	Sector    string         `yaml:"sector" json:"sector"`
	Answers   map[string]int `yaml:"answers" json:"answers"`
	Comment   string         `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// Answer returns the respondent's answer for a question id and whether
// an answer was recorded at all.
func (r *Respondent) Answer(questionID string) (int, bool) {
	v, ok := r.Answers[questionID]
	return v, ok
}

// ScaleMin and ScaleMax bound the Likert answer scale.
const (
	ScaleMin = 1
	ScaleMax = 5
)

// ScaleSize is the number of points on the answer scale.
const ScaleSize = ScaleMax - ScaleMin + 1
