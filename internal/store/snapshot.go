// Package store provides the respondent store: an immutable in-memory
// snapshot used by all aggregation and report generation, plus the
// SQLite-backed persistence it is loaded from.
//
// A Snapshot is never mutated after construction. Report generation holds
// one Snapshot for its whole run, so refreshing the store never changes
// numbers mid-report and concurrent generations need no coordination.
package store

import (
	"errors"
	"fmt"

	"github.com/proartlab/proart/internal/survey"
)

// ErrCompanyNotFound is returned when a company id is not in the snapshot.
var ErrCompanyNotFound = errors.New("company not found")

// Snapshot is an immutable view of the respondent store: the company
// registry plus every stored respondent, indexed by owning company.
type Snapshot struct {
	companies []survey.Company
	byID      map[string]survey.Company

	respondents []survey.Respondent
	byCompany   map[string][]survey.Respondent
}

// NewSnapshot builds a snapshot from a company registry and respondent
// records. Companies keep their supplied order; respondents keep theirs
// within each company. A respondent referencing an unknown company is a
// structural error, not a tolerated data-quality issue.
func NewSnapshot(companies []survey.Company, respondents []survey.Respondent) (*Snapshot, error) {
	s := &Snapshot{
		companies:   make([]survey.Company, len(companies)),
		byID:        make(map[string]survey.Company, len(companies)),
		respondents: make([]survey.Respondent, len(respondents)),
		byCompany:   make(map[string][]survey.Respondent, len(companies)),
	}
	copy(s.companies, companies)
	copy(s.respondents, respondents)

	for _, c := range s.companies {
		if c.ID == "" {
			return nil, fmt.Errorf("company with empty id")
		}
		if _, dup := s.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate company id %q", c.ID)
		}
		s.byID[c.ID] = c
		s.byCompany[c.ID] = nil
	}

	for i := range s.respondents {
		r := &s.respondents[i]
		if _, ok := s.byID[r.CompanyID]; !ok {
			return nil, fmt.Errorf("respondent %q references unknown company %q", r.ID, r.CompanyID)
		}
		if r.Sex == "" {
			r.Sex = survey.SexUndeclared
		}
		if !r.Sex.Valid() {
			return nil, fmt.Errorf("respondent %q has unknown sex category %q", r.ID, r.Sex)
		}
		s.byCompany[r.CompanyID] = append(s.byCompany[r.CompanyID], *r)
	}

	return s, nil
}

// Companies returns the company registry in stable order.
func (s *Snapshot) Companies() []survey.Company {
	return s.companies
}

// Company looks up a company by id.
func (s *Snapshot) Company(id string) (survey.Company, error) {
	c, ok := s.byID[id]
	if !ok {
		return survey.Company{}, fmt.Errorf("%w: %q", ErrCompanyNotFound, id)
	}
	return c, nil
}

// HasCompany reports whether a company id exists in the snapshot.
func (s *Snapshot) HasCompany(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// All returns every respondent in storage order.
func (s *Snapshot) All() []survey.Respondent {
	return s.respondents
}

// Pool returns the respondent pool for an aggregation call: all
// respondents when companyID is empty, otherwise the respondents of
// that company. A company with zero respondents yields an empty,
// non-error pool.
func (s *Snapshot) Pool(companyID string) ([]survey.Respondent, error) {
	if companyID == "" {
		return s.respondents, nil
	}
	if _, ok := s.byID[companyID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrCompanyNotFound, companyID)
	}
	return s.byCompany[companyID], nil
}

// Len returns the total number of respondents.
func (s *Snapshot) Len() int {
	return len(s.respondents)
}
