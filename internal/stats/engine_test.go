package stats

import (
	"errors"
	"testing"

	"github.com/proartlab/proart/internal/store"
	"github.com/proartlab/proart/internal/survey"
)

func testSchema(t *testing.T) *survey.Schema {
	t.Helper()
	s, err := survey.NewSchema(
		[]survey.Section{
			{ID: "a", Name: "Alpha", ShortName: "Alp", Index: 1},
			{ID: "b", Name: "Beta", ShortName: "Bet", Index: 2, Inverted: true},
		},
		[]survey.Question{
			{ID: "a1", SectionID: "a", Number: 1, Text: "Alpha one"},
			{ID: "a2", SectionID: "a", Number: 2, Text: "Alpha two"},
			{ID: "b1", SectionID: "b", Number: 1, Text: "Beta one"},
		},
		survey.DefaultScaleLabels,
	)
	if err != nil {
		t.Fatalf("building test schema: %v", err)
	}
	return s
}

func testEngine(t *testing.T, respondents []survey.Respondent) *Engine {
	t.Helper()
	companies := []survey.Company{
		{ID: "acme", Name: "Acme"},
		{ID: "globex", Name: "Globex"},
		{ID: "empty", Name: "Empty Co"},
	}
	snap, err := store.NewSnapshot(companies, respondents)
	if err != nil {
		t.Fatalf("building snapshot: %v", err)
	}
	return New(testSchema(t), snap)
}

func TestQuestionAverage(t *testing.T) {
	engine := testEngine(t, []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"a1": 4}},
		{ID: "r2", CompanyID: "acme", Answers: map[string]int{"a1": 5}},
		{ID: "r3", CompanyID: "globex", Answers: map[string]int{"a1": 1}},
	})

	tests := []struct {
		name    string
		company string
		want    float64
	}{
		{"single company", "acme", 4.5},
		{"other company", "globex", 1},
		{"whole pool", "", 3.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.QuestionAverage("a1", tt.company)
			if err != nil {
				t.Fatalf("QuestionAverage failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("QuestionAverage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuestionAverageMissingAnswers(t *testing.T) {
	// A respondent without an answer stays in the pool and contributes 0.
	engine := testEngine(t, []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"a1": 4}},
		{ID: "r2", CompanyID: "acme", Answers: map[string]int{}},
	})

	got, err := engine.QuestionAverage("a1", "acme")
	if err != nil {
		t.Fatalf("QuestionAverage failed: %v", err)
	}
	if got != 2 {
		t.Errorf("QuestionAverage = %v, want 2", got)
	}
}

func TestQuestionAverageEmptyPool(t *testing.T) {
	engine := testEngine(t, nil)

	got, err := engine.QuestionAverage("a1", "empty")
	if err != nil {
		t.Fatalf("QuestionAverage failed: %v", err)
	}
	if got != 0 {
		t.Errorf("empty pool average = %v, want 0", got)
	}
}

func TestQuestionAverageErrors(t *testing.T) {
	engine := testEngine(t, nil)

	if _, err := engine.QuestionAverage("nope", ""); !errors.Is(err, survey.ErrQuestionNotFound) {
		t.Errorf("unknown question error = %v", err)
	}
	if _, err := engine.QuestionAverage("a1", "ghost"); !errors.Is(err, store.ErrCompanyNotFound) {
		t.Errorf("unknown company error = %v", err)
	}
}

func TestSectionAverageIsMeanOfMeans(t *testing.T) {
	// a1 averages 3.0 over two respondents, a2 averages 5.0 over one
	// respondent (plus one missing, so 2.5). The section score weighs the
	// questions equally: (3.0 + 2.5) / 2, not the mean of all raw answers.
	engine := testEngine(t, []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"a1": 2, "a2": 5}},
		{ID: "r2", CompanyID: "acme", Answers: map[string]int{"a1": 4}},
	})

	got, err := engine.SectionAverage("a", "acme")
	if err != nil {
		t.Fatalf("SectionAverage failed: %v", err)
	}
	if got != 2.75 {
		t.Errorf("SectionAverage = %v, want 2.75", got)
	}
}

func TestOverallAverage(t *testing.T) {
	engine := testEngine(t, []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"a1": 4, "a2": 4, "b1": 2}},
	})

	got, err := engine.OverallAverage("acme")
	if err != nil {
		t.Fatalf("OverallAverage failed: %v", err)
	}
	// Section a averages 4.0, section b averages 2.0.
	if got != 3 {
		t.Errorf("OverallAverage = %v, want 3", got)
	}
}

func TestAnswerDistribution(t *testing.T) {
	engine := testEngine(t, []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"a1": 3}},
		{ID: "r2", CompanyID: "acme", Answers: map[string]int{"a1": 3}},
		{ID: "r3", CompanyID: "acme", Answers: map[string]int{"a1": 3}},
		{ID: "r4", CompanyID: "acme", Answers: map[string]int{"a1": 3}},
		{ID: "r5", CompanyID: "acme", Answers: map[string]int{"a1": 5}},
	})

	dist, err := engine.AnswerDistribution("a1", "acme")
	if err != nil {
		t.Fatalf("AnswerDistribution failed: %v", err)
	}

	want := [survey.ScaleSize]Bucket{
		{Value: 1, Count: 0, Percentage: 0},
		{Value: 2, Count: 0, Percentage: 0},
		{Value: 3, Count: 4, Percentage: 80},
		{Value: 4, Count: 0, Percentage: 0},
		{Value: 5, Count: 1, Percentage: 20},
	}
	if dist != want {
		t.Errorf("AnswerDistribution = %+v, want %+v", dist, want)
	}
}

func TestAnswerDistributionMissingAnswers(t *testing.T) {
	// Respondents without an answer grow the pool but land in no bucket,
	// so counts may sum to less than the pool size.
	engine := testEngine(t, []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"a1": 2}},
		{ID: "r2", CompanyID: "acme", Answers: map[string]int{}},
	})

	dist, err := engine.AnswerDistribution("a1", "acme")
	if err != nil {
		t.Fatalf("AnswerDistribution failed: %v", err)
	}

	total := 0
	for _, b := range dist {
		total += b.Count
	}
	if total != 1 {
		t.Errorf("bucket counts sum to %d, want 1", total)
	}
	if dist[1].Percentage != 50 {
		t.Errorf("value 2 percentage = %d, want 50", dist[1].Percentage)
	}
}

func TestAnswerDistributionEmptyPool(t *testing.T) {
	engine := testEngine(t, nil)

	dist, err := engine.AnswerDistribution("a1", "empty")
	if err != nil {
		t.Fatalf("AnswerDistribution failed: %v", err)
	}
	for i, b := range dist {
		if b.Value != i+1 {
			t.Errorf("bucket %d value = %d, want %d", i, b.Value, i+1)
		}
		if b.Count != 0 || b.Percentage != 0 {
			t.Errorf("bucket %d = %+v, want zeroes", i, b)
		}
	}
}

func TestEngineIdempotence(t *testing.T) {
	engine := testEngine(t, []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"a1": 2, "a2": 4, "b1": 3}},
		{ID: "r2", CompanyID: "acme", Answers: map[string]int{"a1": 5, "b1": 1}},
	})

	first, err := engine.SectionAverage("a", "acme")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := engine.SectionAverage("a", "acme")
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("run %d: SectionAverage = %v, first run = %v", i, again, first)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.0 / 3.0, 0.33},
		{2.0 / 3.0, 0.67},
		{3.125, 3.13}, // exact binary half rounds up
		{2.0, 2.0},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		count, total, want int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{4, 5, 80},
		{0, 5, 0},
		{5, 5, 100},
		{1, 0, 0},
	}

	for _, tt := range tests {
		if got := Percent(tt.count, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.count, tt.total, got, tt.want)
		}
	}
}
