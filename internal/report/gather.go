package report

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/proartlab/proart/internal/stats"
	"github.com/proartlab/proart/internal/survey"
)

// ErrTooFewCompanies is returned when a comparison report is requested
// with fewer than two company ids.
var ErrTooFewCompanies = errors.New("comparison report requires at least 2 companies")

// TopItems is how many strengths and critical items a company report ranks.
const TopItems = 5

// ageBand is one fixed band of the demographic age breakdown.
type ageBand struct {
	label string
	min   int
	max   int // inclusive; 0 means open-ended
}

var ageBands = []ageBand{
	{"18-25", 18, 25},
	{"26-35", 26, 35},
	{"36-45", 36, 45},
	{"46-55", 46, 55},
	{"56+", 56, 0},
}

// Gatherer populates report data structures from the stats engine.
// All gathering is read-only over the engine's snapshot; a failed lookup
// aborts the whole report rather than emitting a partial one.
type Gatherer struct {
	engine     *stats.Engine
	thresholds stats.Thresholds
	now        func() time.Time
}

// NewGatherer creates a Gatherer over an engine with the default
// classification thresholds.
func NewGatherer(engine *stats.Engine) *Gatherer {
	return &Gatherer{engine: engine, thresholds: stats.DefaultThresholds(), now: time.Now}
}

// SetThresholds overrides the classification thresholds.
func (g *Gatherer) SetThresholds(t stats.Thresholds) {
	g.thresholds = t
}

// classify bands a section or question average after orienting it, so
// inverted sections classify on the favorable scale.
func (g *Gatherer) classify(sec survey.Section, avg float64) stats.Band {
	return stats.ClassifyWithThresholds(stats.Oriented(sec, avg), g.thresholds)
}

// SetClock overrides the generation timestamp source. Used by tests and
// by callers that need reproducible headers.
func (g *Gatherer) SetClock(now func() time.Time) {
	g.now = now
}

func (g *Gatherer) header(t Type) Header {
	return Header{Type: t, GeneratedAt: g.now().UTC()}
}

func (g *Gatherer) companyInfo(companyID string) (CompanyInfo, error) {
	c, err := g.engine.Snapshot().Company(companyID)
	if err != nil {
		return CompanyInfo{}, err
	}
	n, err := g.engine.PoolSize(companyID)
	if err != nil {
		return CompanyInfo{}, err
	}
	return CompanyInfo{
		ID:          c.ID,
		Name:        c.Name,
		Sector:      c.Sector,
		Employees:   c.Employees,
		Respondents: n,
	}, nil
}

// CompanyReport gathers the complete single-company report.
func (g *Gatherer) CompanyReport(companyID string) (*CompanyReportData, error) {
	info, err := g.companyInfo(companyID)
	if err != nil {
		return nil, err
	}

	data := &CompanyReportData{
		Report:      g.header(TypeCompany),
		ScaleLabels: g.engine.Schema().ScaleLabels(),
		Company:     info,
	}

	if data.Overall, err = g.engine.OverallAverage(companyID); err != nil {
		return nil, fmt.Errorf("overall average: %w", err)
	}
	if data.Sections, err = g.sectionSummaries(companyID); err != nil {
		return nil, fmt.Errorf("section summary: %w", err)
	}
	if data.Breakdown, err = g.breakdown(companyID); err != nil {
		return nil, fmt.Errorf("question breakdown: %w", err)
	}
	if data.Strengths, data.Critical, err = g.rankings(companyID); err != nil {
		return nil, fmt.Errorf("rankings: %w", err)
	}
	if data.Profile, err = g.demographics(companyID); err != nil {
		return nil, fmt.Errorf("demographics: %w", err)
	}

	return data, nil
}

// sectionSummaries builds the per-section summary rows, including the
// signed difference against the all-company pool.
func (g *Gatherer) sectionSummaries(companyID string) ([]SectionSummary, error) {
	sections := g.engine.Schema().Sections()
	rows := make([]SectionSummary, 0, len(sections))
	for _, sec := range sections {
		avg, err := g.engine.SectionAverage(sec.ID, companyID)
		if err != nil {
			return nil, err
		}
		allAvg, err := g.engine.SectionAverage(sec.ID, "")
		if err != nil {
			return nil, err
		}
		rows = append(rows, SectionSummary{
			SectionID: sec.ID,
			Name:      sec.Name,
			ShortName: sec.ShortName,
			Average:   avg,
			Band:      g.classify(sec, avg),
			DiffVsAll: stats.Round2(avg - allAvg),
		})
	}
	return rows, nil
}

// breakdown builds the full per-question table for every section.
func (g *Gatherer) breakdown(companyID string) ([]SectionBreakdown, error) {
	sections := g.engine.Schema().Sections()
	out := make([]SectionBreakdown, 0, len(sections))
	for _, sec := range sections {
		questions, err := g.engine.Schema().SectionQuestions(sec.ID)
		if err != nil {
			return nil, err
		}
		sb := SectionBreakdown{SectionID: sec.ID, Name: sec.Name, Questions: make([]QuestionRow, 0, len(questions))}
		for _, q := range questions {
			avg, err := g.engine.QuestionAverage(q.ID, companyID)
			if err != nil {
				return nil, err
			}
			dist, err := g.engine.AnswerDistribution(q.ID, companyID)
			if err != nil {
				return nil, err
			}
			row := QuestionRow{
				QuestionID: q.ID,
				Number:     q.Number,
				Text:       q.Text,
				Average:    avg,
				Band:       g.classify(sec, avg),
			}
			for i, b := range dist {
				row.Percentages[i] = b.Percentage
			}
			sb.Questions = append(sb.Questions, row)
		}
		out = append(out, sb)
	}
	return out, nil
}

// rankings builds the top-N strengths and critical items across all
// questions, ranked by oriented score. Ties keep original question order
// (stable sort), never an arbitrary reordering.
func (g *Gatherer) rankings(companyID string) (strengths, critical []RankedItem, err error) {
	schema := g.engine.Schema()
	items := make([]RankedItem, 0, len(schema.Questions()))
	for _, q := range schema.Questions() {
		sec, err := schema.Section(q.SectionID)
		if err != nil {
			return nil, nil, err
		}
		avg, err := g.engine.QuestionAverage(q.ID, companyID)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, RankedItem{
			QuestionID: q.ID,
			SectionID:  q.SectionID,
			Number:     q.Number,
			Text:       q.Text,
			Average:    avg,
			Oriented:   stats.Oriented(sec, avg),
		})
	}

	top := func(less func(a, b RankedItem) bool) []RankedItem {
		ranked := make([]RankedItem, len(items))
		copy(ranked, items)
		sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
		if len(ranked) > TopItems {
			ranked = ranked[:TopItems]
		}
		return ranked
	}

	strengths = top(func(a, b RankedItem) bool { return a.Oriented > b.Oriented })
	critical = top(func(a, b RankedItem) bool { return a.Oriented < b.Oriented })
	return strengths, critical, nil
}

// demographics builds the sex and age-band breakdowns for one company.
func (g *Gatherer) demographics(companyID string) (Demographics, error) {
	pool, err := g.engine.Snapshot().Pool(companyID)
	if err != nil {
		return Demographics{}, err
	}

	var d Demographics
	for _, sex := range survey.Sexes {
		count := 0
		for i := range pool {
			if pool[i].Sex == sex {
				count++
			}
		}
		pct := 0
		if len(pool) > 0 {
			pct = stats.Percent(count, len(pool))
		}
		d.Sex = append(d.Sex, SexCount{Sex: sex, Label: sex.Label(), Count: count, Percentage: pct})
	}

	for _, band := range ageBands {
		count := 0
		for i := range pool {
			age := pool[i].Age
			if age < band.min {
				continue
			}
			if band.max > 0 && age > band.max {
				continue
			}
			count++
		}
		d.AgeBands = append(d.AgeBands, AgeBandCount{Label: band.label, Count: count})
	}

	return d, nil
}

// ComparisonReport gathers the multi-company comparison report for a
// caller-supplied, ordered set of at least two company ids.
func (g *Gatherer) ComparisonReport(companyIDs []string) (*ComparisonReportData, error) {
	if len(companyIDs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCompanies, len(companyIDs))
	}

	schema := g.engine.Schema()
	data := &ComparisonReportData{
		Report:   g.header(TypeComparison),
		Sections: schema.Sections(),
	}

	for _, id := range companyIDs {
		info, err := g.companyInfo(id)
		if err != nil {
			return nil, err
		}
		row := OverviewRow{
			Company:         info,
			SectionAverages: make([]float64, 0, len(data.Sections)),
			SectionBands:    make([]stats.Band, 0, len(data.Sections)),
		}
		for _, sec := range data.Sections {
			avg, err := g.engine.SectionAverage(sec.ID, id)
			if err != nil {
				return nil, err
			}
			row.SectionAverages = append(row.SectionAverages, avg)
			row.SectionBands = append(row.SectionBands, g.classify(sec, avg))
		}
		if row.Overall, err = g.engine.OverallAverage(id); err != nil {
			return nil, err
		}
		data.Overview = append(data.Overview, row)
	}

	for _, sec := range data.Sections {
		questions, err := schema.SectionQuestions(sec.ID)
		if err != nil {
			return nil, err
		}
		m := SectionMatrix{SectionID: sec.ID, Name: sec.Name, Questions: make([]MatrixRow, 0, len(questions))}
		for _, q := range questions {
			row := MatrixRow{QuestionID: q.ID, Number: q.Number, Text: q.Text, Averages: make([]float64, 0, len(companyIDs))}
			for _, id := range companyIDs {
				avg, err := g.engine.QuestionAverage(q.ID, id)
				if err != nil {
					return nil, err
				}
				row.Averages = append(row.Averages, avg)
			}
			m.Questions = append(m.Questions, row)
		}
		data.Matrix = append(data.Matrix, m)
	}

	return data, nil
}

// RawExport gathers the raw-data export: one row per respondent with
// answers in schema order. companyID restricts the export to one company
// when non-empty. Missing answers export as empty strings.
func (g *Gatherer) RawExport(companyID string) (*RawExportData, error) {
	schema := g.engine.Schema()
	snap := g.engine.Snapshot()

	pool, err := snap.Pool(companyID)
	if err != nil {
		return nil, err
	}

	data := &RawExportData{Report: g.header(TypeRaw)}
	for _, q := range schema.Questions() {
		data.Columns = append(data.Columns, fmt.Sprintf("%s_%d", q.SectionID, q.Number))
	}

	for i := range pool {
		r := &pool[i]
		company, err := snap.Company(r.CompanyID)
		if err != nil {
			return nil, err
		}
		row := RawRow{
			RespondentID: r.ID,
			CompanyName:  company.Name,
			Sex:          r.Sex,
			Age:          r.Age,
			Sector:       r.Sector,
			Comment:      r.Comment,
			Answers:      make([]string, 0, len(schema.Questions())),
		}
		for _, q := range schema.Questions() {
			if v, ok := r.Answer(q.ID); ok {
				row.Answers = append(row.Answers, strconv.Itoa(v))
			} else {
				row.Answers = append(row.Answers, "")
			}
		}
		data.Rows = append(data.Rows, row)
	}

	return data, nil
}

// Heatmap gathers the single-section matrix of question averages across
// every company in the store.
func (g *Gatherer) Heatmap(sectionID string) (*HeatmapData, error) {
	schema := g.engine.Schema()
	sec, err := schema.Section(sectionID)
	if err != nil {
		return nil, err
	}
	questions, err := schema.SectionQuestions(sectionID)
	if err != nil {
		return nil, err
	}

	data := &HeatmapData{
		Report:  g.header(TypeHeatmap),
		Section: sec,
	}

	companies := g.engine.Snapshot().Companies()
	for _, c := range companies {
		info, err := g.companyInfo(c.ID)
		if err != nil {
			return nil, err
		}
		data.Companies = append(data.Companies, info)
	}

	for _, q := range questions {
		row := HeatmapRow{QuestionID: q.ID, Number: q.Number, Text: q.Text, Cells: make([]HeatmapCell, 0, len(companies))}
		for _, c := range companies {
			avg, err := g.engine.QuestionAverage(q.ID, c.ID)
			if err != nil {
				return nil, err
			}
			row.Cells = append(row.Cells, HeatmapCell{
				CompanyID: c.ID,
				Average:   avg,
				Band:      g.classify(sec, avg),
			})
		}
		data.Rows = append(data.Rows, row)
	}

	return data, nil
}
