package store

import (
	"testing"

	"github.com/proartlab/proart/internal/survey"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestImportAndLoadSnapshot(t *testing.T) {
	schema := testSchema(t)
	db := openTestDB(t)

	if err := db.ImportCompanies(testCompanies()); err != nil {
		t.Fatalf("ImportCompanies failed: %v", err)
	}
	respondents := []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Sex: survey.SexFemale, Age: 34, Comment: "ok", Answers: map[string]int{"a1": 4, "b1": 2}},
		{ID: "r2", CompanyID: "globex", Sex: survey.SexMale, Answers: map[string]int{"a1": 3}},
	}
	if err := db.ImportRespondents(respondents); err != nil {
		t.Fatalf("ImportRespondents failed: %v", err)
	}

	snap, err := db.LoadSnapshot(schema)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if snap.Len() != 2 {
		t.Fatalf("snapshot has %d respondents, want 2", snap.Len())
	}

	// Arrival order survives the round trip.
	all := snap.All()
	if all[0].ID != "r1" || all[1].ID != "r2" {
		t.Errorf("order = %s, %s", all[0].ID, all[1].ID)
	}

	r1 := all[0]
	if r1.Sex != survey.SexFemale || r1.Age != 34 || r1.Comment != "ok" {
		t.Errorf("r1 = %+v", r1)
	}
	if v, ok := r1.Answer("b1"); !ok || v != 2 {
		t.Errorf("r1 b1 = %d, %v", v, ok)
	}
	if _, ok := all[1].Answer("b1"); ok {
		t.Error("r2 should have no b1 answer")
	}
}

func TestImportRespondentsReplaces(t *testing.T) {
	schema := testSchema(t)
	db := openTestDB(t)

	if err := db.ImportCompanies(testCompanies()); err != nil {
		t.Fatal(err)
	}
	first := []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"a1": 4, "a2": 5}},
	}
	if err := db.ImportRespondents(first); err != nil {
		t.Fatal(err)
	}

	// Re-importing the same respondent replaces its answer set entirely.
	second := []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"a1": 1}},
	}
	if err := db.ImportRespondents(second); err != nil {
		t.Fatal(err)
	}

	snap, err := db.LoadSnapshot(schema)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Len() != 1 {
		t.Fatalf("snapshot has %d respondents, want 1", snap.Len())
	}
	r := snap.All()[0]
	if v, _ := r.Answer("a1"); v != 1 {
		t.Errorf("a1 = %d, want 1", v)
	}
	if _, ok := r.Answer("a2"); ok {
		t.Error("stale a2 answer survived re-import")
	}
}

func TestLoadSnapshotDropsUnknownQuestions(t *testing.T) {
	schema := testSchema(t)
	db := openTestDB(t)

	if err := db.ImportCompanies(testCompanies()); err != nil {
		t.Fatal(err)
	}
	respondents := []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"a1": 4, "zz9": 5}},
	}
	if err := db.ImportRespondents(respondents); err != nil {
		t.Fatal(err)
	}

	snap, err := db.LoadSnapshot(schema)
	if err != nil {
		t.Fatal(err)
	}
	r := snap.All()[0]
	if _, ok := r.Answer("zz9"); ok {
		t.Error("answer for unknown question id should be dropped on load")
	}
	if v, _ := r.Answer("a1"); v != 4 {
		t.Errorf("a1 = %d, want 4", v)
	}
}

func TestCounts(t *testing.T) {
	db := openTestDB(t)

	if err := db.ImportCompanies(testCompanies()); err != nil {
		t.Fatal(err)
	}
	if err := db.ImportRespondents(testRespondents()); err != nil {
		t.Fatal(err)
	}

	companies, respondents, err := db.Counts()
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if companies != 2 || respondents != 3 {
		t.Errorf("Counts = %d, %d, want 2, 3", companies, respondents)
	}
}
