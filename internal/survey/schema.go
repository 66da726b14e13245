package survey

import (
	"errors"
	"fmt"
)

// ErrQuestionNotFound is returned when a question id is not in the schema.
var ErrQuestionNotFound = errors.New("question not found")

// ErrSectionNotFound is returned when a section id is not in the schema.
var ErrSectionNotFound = errors.New("section not found")

// Schema is the validated, ordered questionnaire definition.
//
// The ordered sequence of questions per section defines report row order,
// so insertion order is preserved exactly as supplied to NewSchema.
// A Schema is read-only after construction.
type Schema struct {
	sections  []Section
	questions []Question

	sectionByID  map[string]Section
	questionByID map[string]Question
	bySection    map[string][]Question

	scaleLabels [ScaleSize]string
}

// NewSchema builds a Schema from ordered sections and questions.
//
// Validation rules:
//   - section and question ids must be unique and non-empty
//   - every question must reference an existing section
//   - question numbers must be strictly increasing within a section
func NewSchema(sections []Section, questions []Question, scaleLabels [ScaleSize]string) (*Schema, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("schema has no sections")
	}

	s := &Schema{
		sections:     make([]Section, len(sections)),
		questions:    make([]Question, len(questions)),
		sectionByID:  make(map[string]Section, len(sections)),
		questionByID: make(map[string]Question, len(questions)),
		bySection:    make(map[string][]Question, len(sections)),
		scaleLabels:  scaleLabels,
	}
	copy(s.sections, sections)
	copy(s.questions, questions)

	for _, sec := range s.sections {
		if sec.ID == "" {
			return nil, fmt.Errorf("section with empty id")
		}
		if _, dup := s.sectionByID[sec.ID]; dup {
			return nil, fmt.Errorf("duplicate section id %q", sec.ID)
		}
		s.sectionByID[sec.ID] = sec
		s.bySection[sec.ID] = nil
	}

	lastNumber := make(map[string]int, len(sections))
	for _, q := range s.questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question with empty id in section %q", q.SectionID)
		}
		if _, dup := s.questionByID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		if _, ok := s.sectionByID[q.SectionID]; !ok {
			return nil, fmt.Errorf("question %q references unknown section %q", q.ID, q.SectionID)
		}
		if q.Number <= lastNumber[q.SectionID] {
			return nil, fmt.Errorf("question %q number %d is not increasing within section %q", q.ID, q.Number, q.SectionID)
		}
		lastNumber[q.SectionID] = q.Number
		s.questionByID[q.ID] = q
		s.bySection[q.SectionID] = append(s.bySection[q.SectionID], q)
	}

	return s, nil
}

// Sections returns all sections in questionnaire order.
func (s *Schema) Sections() []Section {
	return s.sections
}

// Questions returns every question in schema order (section order, then
// ordinal number within the section).
func (s *Schema) Questions() []Question {
	return s.questions
}

// Section looks up a section by id.
func (s *Schema) Section(id string) (Section, error) {
	sec, ok := s.sectionByID[id]
	if !ok {
		return Section{}, fmt.Errorf("%w: %q", ErrSectionNotFound, id)
	}
	return sec, nil
}

// Question looks up a question by id.
func (s *Schema) Question(id string) (Question, error) {
	q, ok := s.questionByID[id]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrQuestionNotFound, id)
	}
	return q, nil
}

// SectionQuestions returns the ordered questions of one section.
func (s *Schema) SectionQuestions(sectionID string) ([]Question, error) {
	if _, ok := s.sectionByID[sectionID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, sectionID)
	}
	return s.bySection[sectionID], nil
}

// HasQuestion reports whether a question id exists in the schema.
func (s *Schema) HasQuestion(id string) bool {
	_, ok := s.questionByID[id]
	return ok
}

// Inverted reports whether the section owning the given question scores
// in the inverse direction (higher raw value = worse outcome).
// Unknown ids report false.
func (s *Schema) Inverted(sectionID string) bool {
	sec, ok := s.sectionByID[sectionID]
	return ok && sec.Inverted
}

// ScaleLabels returns the labels for scale values 1..5 in value order.
func (s *Schema) ScaleLabels() [ScaleSize]string {
	return s.scaleLabels
}

// ScaleLabel returns the label for a single scale value, or the empty
// string when the value is out of range.
func (s *Schema) ScaleLabel(value int) string {
	if value < ScaleMin || value > ScaleMax {
		return ""
	}
	return s.scaleLabels[value-ScaleMin]
}
