package store

import (
	"errors"
	"testing"

	"github.com/proartlab/proart/internal/survey"
)

func testCompanies() []survey.Company {
	return []survey.Company{
		{ID: "acme", Name: "Acme", Sector: "Manufacturing", Employees: 120},
		{ID: "globex", Name: "Globex", Sector: "Logistics", Employees: 45},
	}
}

func testRespondents() []survey.Respondent {
	return []survey.Respondent{
		{ID: "r1", CompanyID: "acme", Answers: map[string]int{"c1": 4}},
		{ID: "r2", CompanyID: "acme", Answers: map[string]int{"c1": 2}},
		{ID: "r3", CompanyID: "globex", Answers: map[string]int{"c1": 5}},
	}
}

func TestNewSnapshot(t *testing.T) {
	s, err := NewSnapshot(testCompanies(), testRespondents())
	if err != nil {
		t.Fatalf("NewSnapshot failed: %v", err)
	}

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if got := len(s.Companies()); got != 2 {
		t.Errorf("Companies() = %d, want 2", got)
	}
	if !s.HasCompany("acme") || s.HasCompany("initech") {
		t.Error("HasCompany lookup wrong")
	}

	c, err := s.Company("globex")
	if err != nil {
		t.Fatalf("Company(globex) failed: %v", err)
	}
	if c.Name != "Globex" || c.Employees != 45 {
		t.Errorf("Company(globex) = %+v", c)
	}
}

func TestNewSnapshotValidation(t *testing.T) {
	if _, err := NewSnapshot([]survey.Company{{ID: ""}}, nil); err == nil {
		t.Error("empty company id should fail")
	}
	if _, err := NewSnapshot([]survey.Company{{ID: "a"}, {ID: "a"}}, nil); err == nil {
		t.Error("duplicate company id should fail")
	}
	orphan := []survey.Respondent{{ID: "r1", CompanyID: "ghost"}}
	if _, err := NewSnapshot(testCompanies(), orphan); err == nil {
		t.Error("respondent with unknown company should fail")
	}
	bogus := []survey.Respondent{{ID: "r1", CompanyID: "acme", Sex: "robot"}}
	if _, err := NewSnapshot(testCompanies(), bogus); err == nil {
		t.Error("respondent with unknown sex category should fail")
	}
}

func TestNewSnapshotNormalizesEmptySex(t *testing.T) {
	rs := []survey.Respondent{{ID: "r1", CompanyID: "acme", Answers: map[string]int{"c1": 3}}}
	s, err := NewSnapshot(testCompanies(), rs)
	if err != nil {
		t.Fatalf("NewSnapshot failed: %v", err)
	}
	pool, err := s.Pool("acme")
	if err != nil {
		t.Fatalf("Pool(acme) failed: %v", err)
	}
	if len(pool) != 1 || pool[0].Sex != survey.SexUndeclared {
		t.Errorf("Pool(acme)[0].Sex = %q, want %q", pool[0].Sex, survey.SexUndeclared)
	}
}

func TestSnapshotPool(t *testing.T) {
	s, err := NewSnapshot(testCompanies(), testRespondents())
	if err != nil {
		t.Fatalf("NewSnapshot failed: %v", err)
	}

	all, err := s.Pool("")
	if err != nil {
		t.Fatalf("Pool(\"\") failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all pool size = %d, want 3", len(all))
	}

	acme, err := s.Pool("acme")
	if err != nil {
		t.Fatalf("Pool(acme) failed: %v", err)
	}
	if len(acme) != 2 || acme[0].ID != "r1" || acme[1].ID != "r2" {
		t.Errorf("acme pool = %+v", acme)
	}

	if _, err := s.Pool("initech"); !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("Pool(initech) error = %v, want ErrCompanyNotFound", err)
	}
}

func TestSnapshotPoolEmptyCompany(t *testing.T) {
	// A registered company with no respondents is a valid empty pool.
	companies := append(testCompanies(), survey.Company{ID: "initech", Name: "Initech"})
	s, err := NewSnapshot(companies, testRespondents())
	if err != nil {
		t.Fatalf("NewSnapshot failed: %v", err)
	}

	pool, err := s.Pool("initech")
	if err != nil {
		t.Fatalf("Pool(initech) failed: %v", err)
	}
	if len(pool) != 0 {
		t.Errorf("empty company pool size = %d, want 0", len(pool))
	}
}
