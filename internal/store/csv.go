package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/proartlab/proart/internal/survey"
)

// CSV ingestion for collected responses. The expected layout mirrors the
// raw-data export: fixed demographic columns followed by one column per
// question id. A blank answer cell means the question was skipped.
//
//	respondent,company,sex,age,sector,comment,c1,c2,...,h23

// ReadRespondentsCSV parses respondent records from r. Question columns
// are matched against the schema by header name; headers that are neither
// a demographic field nor a known question id are rejected so that typos
// in question ids do not silently drop a whole column of answers.
func ReadRespondentsCSV(r io.Reader, schema *survey.Schema) ([]survey.Respondent, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	demographic := map[string]bool{
		"respondent": true, "company": true, "sex": true,
		"age": true, "sector": true, "comment": true,
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if !demographic[name] && !schema.HasQuestion(name) {
			return nil, fmt.Errorf("unknown column %q", h)
		}
		cols[name] = i
	}
	for _, required := range []string{"respondent", "company"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var respondents []survey.Respondent
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		line++

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		resp := survey.Respondent{
			ID:        field("respondent"),
			CompanyID: field("company"),
			Sector:    field("sector"),
			Comment:   field("comment"),
			Answers:   make(map[string]int),
		}
		if resp.ID == "" {
			return nil, fmt.Errorf("line %d: empty respondent id", line)
		}
		if resp.CompanyID == "" {
			return nil, fmt.Errorf("line %d: empty company id", line)
		}

		// Unknown sex labels are tolerated as undeclared.
		resp.Sex, _ = survey.ParseSex(field("sex"))

		if ageRaw := field("age"); ageRaw != "" {
			age, err := strconv.Atoi(ageRaw)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid age %q", line, ageRaw)
			}
			resp.Age = age
		}

		for _, q := range schema.Questions() {
			raw := field(q.ID)
			if raw == "" {
				continue
			}
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: question %s: invalid answer %q", line, q.ID, raw)
			}
			if v < survey.ScaleMin || v > survey.ScaleMax {
				return nil, fmt.Errorf("line %d: question %s: answer %d outside scale [%d,%d]", line, q.ID, v, survey.ScaleMin, survey.ScaleMax)
			}
			resp.Answers[q.ID] = v
		}

		respondents = append(respondents, resp)
	}

	return respondents, nil
}

// ReadCompaniesCSV parses the company registry from r.
// Expected layout: id,name,sector,employees with a header row.
func ReadCompaniesCSV(r io.Reader) ([]survey.Company, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 4

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var companies []survey.Company
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		line++

		employees, err := strconv.Atoi(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid employee count %q", line, record[3])
		}
		companies = append(companies, survey.Company{
			ID:        strings.TrimSpace(record[0]),
			Name:      strings.TrimSpace(record[1]),
			Sector:    strings.TrimSpace(record[2]),
			Employees: employees,
		})
	}

	return companies, nil
}
