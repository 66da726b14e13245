// Package stats computes aggregate scores over a respondent snapshot:
// per-question and per-section averages, answer distributions, and the
// classification of averages into qualitative bands.
//
// Every operation is a pure function of the snapshot the engine was built
// with. Calling the same operation twice on an unchanged engine yields
// identical results, and multiple engines or report generations may run
// concurrently over the same snapshot.
package stats

import (
	"fmt"
	"math"

	"github.com/proartlab/proart/internal/store"
	"github.com/proartlab/proart/internal/survey"
)

// Engine computes aggregates over one schema and one snapshot.
type Engine struct {
	schema *survey.Schema
	snap   *store.Snapshot
}

// New creates an engine bound to a schema and a store snapshot.
func New(schema *survey.Schema, snap *store.Snapshot) *Engine {
	return &Engine{schema: schema, snap: snap}
}

// Schema returns the schema the engine aggregates against.
func (e *Engine) Schema() *survey.Schema {
	return e.schema
}

// Snapshot returns the snapshot the engine aggregates over.
func (e *Engine) Snapshot() *store.Snapshot {
	return e.snap
}

// Bucket is one entry of an answer distribution: how many respondents in
// the pool gave the scale value, and that count as a whole percentage of
// the pool.
type Bucket struct {
	Value      int `yaml:"value" json:"value"`
	Count      int `yaml:"count" json:"count"`
	Percentage int `yaml:"percentage" json:"percentage"`
}

// QuestionAverage returns the arithmetic mean of the answers for a
// question across the pool (all respondents, or one company's when
// companyID is non-empty), rounded once to two decimals.
//
// An empty pool is a valid, reportable state and yields 0. A respondent
// without an answer for the question contributes 0 to the sum but still
// counts in the pool; missing answers are tolerated, not repaired.
func (e *Engine) QuestionAverage(questionID, companyID string) (float64, error) {
	if !e.schema.HasQuestion(questionID) {
		return 0, fmt.Errorf("%w: %q", survey.ErrQuestionNotFound, questionID)
	}
	pool, err := e.snap.Pool(companyID)
	if err != nil {
		return 0, err
	}
	if len(pool) == 0 {
		return 0, nil
	}

	sum := 0
	for i := range pool {
		v, _ := pool[i].Answer(questionID)
		sum += v
	}
	return Round2(float64(sum) / float64(len(pool))), nil
}

// SectionAverage returns the mean of the per-question averages of every
// question in the section, rounded once to two decimals.
//
// This is a deliberate two-level aggregation (mean of means, not the mean
// over all raw answers): each question contributes equal weight to its
// section's score regardless of respondent counts.
func (e *Engine) SectionAverage(sectionID, companyID string) (float64, error) {
	questions, err := e.schema.SectionQuestions(sectionID)
	if err != nil {
		return 0, err
	}
	if len(questions) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, q := range questions {
		avg, err := e.QuestionAverage(q.ID, companyID)
		if err != nil {
			return 0, err
		}
		sum += avg
	}
	return Round2(sum / float64(len(questions))), nil
}

// OverallAverage returns the mean of the section averages across all
// sections, rounded to two decimals.
func (e *Engine) OverallAverage(companyID string) (float64, error) {
	sections := e.schema.Sections()
	if len(sections) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, sec := range sections {
		avg, err := e.SectionAverage(sec.ID, companyID)
		if err != nil {
			return 0, err
		}
		sum += avg
	}
	return Round2(sum / float64(len(sections))), nil
}

// AnswerDistribution returns the five distribution buckets for a question
// in ascending scale order. All five entries are always present, even
// when a count is zero; percentages are whole percent of the pool and 0
// for an empty pool. Respondents without an answer are counted in the
// pool size but in no bucket, so bucket counts may sum to less than the
// pool when answers are missing.
func (e *Engine) AnswerDistribution(questionID, companyID string) ([survey.ScaleSize]Bucket, error) {
	var dist [survey.ScaleSize]Bucket
	if !e.schema.HasQuestion(questionID) {
		return dist, fmt.Errorf("%w: %q", survey.ErrQuestionNotFound, questionID)
	}
	pool, err := e.snap.Pool(companyID)
	if err != nil {
		return dist, err
	}

	for i := range dist {
		dist[i].Value = survey.ScaleMin + i
	}
	for i := range pool {
		v, ok := pool[i].Answer(questionID)
		if !ok || v < survey.ScaleMin || v > survey.ScaleMax {
			continue
		}
		dist[v-survey.ScaleMin].Count++
	}
	if len(pool) > 0 {
		for i := range dist {
			dist[i].Percentage = Percent(dist[i].Count, len(pool))
		}
	}
	return dist, nil
}

// PoolSize returns the number of respondents in the pool.
func (e *Engine) PoolSize(companyID string) (int, error) {
	pool, err := e.snap.Pool(companyID)
	if err != nil {
		return 0, err
	}
	return len(pool), nil
}

// Round2 rounds to two decimal places, half away from zero. Averages are
// rounded exactly once, after the mean is computed.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percent returns count/total as a whole percentage, rounded to the
// nearest integer. A zero total yields 0.
func Percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
