// Package report assembles aggregation results into report documents.
//
// This package defines the typed data structures for the four report
// operations (company, comparison, raw export, heatmap) and the gatherer
// that populates them from the stats engine. Renderers consume these
// structures as-is: the tabular and paginated-document outputs of the
// same report are built from one gathered dataset and can never disagree
// on a number.
package report

import (
	"time"

	"github.com/proartlab/proart/internal/stats"
	"github.com/proartlab/proart/internal/survey"
)

// Type represents the kind of report being generated.
type Type string

const (
	// TypeCompany is the single-company detail report.
	TypeCompany Type = "company"

	// TypeComparison is the multi-company comparison report.
	TypeComparison Type = "comparison"

	// TypeRaw is the raw-data export, one row per respondent.
	TypeRaw Type = "raw"

	// TypeHeatmap is the single-section, all-company matrix export.
	TypeHeatmap Type = "heatmap"
)

// String returns the string representation of the report type.
func (t Type) String() string {
	return string(t)
}

// Header is the common report header with type and generation timestamp.
type Header struct {
	Type        Type      `yaml:"type" json:"type"`
	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at"`
}

// CompanyInfo is the company metadata carried in report headers and
// comparison columns.
type CompanyInfo struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Sector      string `yaml:"sector" json:"sector"`
	Employees   int    `yaml:"employees" json:"employees"`
	Respondents int    `yaml:"respondents" json:"respondents"`
}

// SectionSummary is one row of the section-summary table: the section's
// raw average, its classification (of the oriented average), and the
// signed difference against the all-company pool for the same section.
type SectionSummary struct {
	SectionID string     `yaml:"section" json:"section"`
	Name      string     `yaml:"name" json:"name"`
	ShortName string     `yaml:"short_name" json:"short_name"`
	Average   float64    `yaml:"average" json:"average"`
	Band      stats.Band `yaml:"band" json:"band"`
	DiffVsAll float64    `yaml:"diff_vs_all" json:"diff_vs_all"`
}

// QuestionRow is one row of a per-question breakdown table. Percentages
// holds the five distribution percentages in scale order 1..5. Band
// classifies the oriented average and drives cell coloring.
type QuestionRow struct {
	QuestionID  string                `yaml:"question" json:"question"`
	Number      int                   `yaml:"number" json:"number"`
	Text        string                `yaml:"text" json:"text"`
	Average     float64               `yaml:"average" json:"average"`
	Band        stats.Band            `yaml:"band" json:"band"`
	Percentages [survey.ScaleSize]int `yaml:"percentages" json:"percentages"`
}

// SectionBreakdown is the full per-question table of one section.
type SectionBreakdown struct {
	SectionID string        `yaml:"section" json:"section"`
	Name      string        `yaml:"name" json:"name"`
	Questions []QuestionRow `yaml:"questions" json:"questions"`
}

// RankedItem is one entry of the strengths or critical-items ranking.
// Average is the raw question average; Oriented is the value the ranking
// compared on.
type RankedItem struct {
	QuestionID string  `yaml:"question" json:"question"`
	SectionID  string  `yaml:"section" json:"section"`
	Number     int     `yaml:"number" json:"number"`
	Text       string  `yaml:"text" json:"text"`
	Average    float64 `yaml:"average" json:"average"`
	Oriented   float64 `yaml:"oriented" json:"oriented"`
}

// SexCount is one row of the demographic sex breakdown.
type SexCount struct {
	Sex        survey.Sex `yaml:"sex" json:"sex"`
	Label      string     `yaml:"label" json:"label"`
	Count      int        `yaml:"count" json:"count"`
	Percentage int        `yaml:"percentage" json:"percentage"`
}

// AgeBandCount is one row of the demographic age breakdown.
type AgeBandCount struct {
	Label string `yaml:"label" json:"label"`
	Count int    `yaml:"count" json:"count"`
}

// Demographics is the respondent-profile section of a company report.
type Demographics struct {
	Sex      []SexCount     `yaml:"sex" json:"sex"`
	AgeBands []AgeBandCount `yaml:"age_bands" json:"age_bands"`
}

// CompanyReportData is the complete single-company report. ScaleLabels
// carries the schema's answer-scale labels so renderers can head the
// distribution columns without reaching back into the schema.
type CompanyReportData struct {
	Report      Header                   `yaml:"report" json:"report"`
	ScaleLabels [survey.ScaleSize]string `yaml:"scale_labels" json:"scale_labels"`
	Company     CompanyInfo              `yaml:"company" json:"company"`
	Overall     float64                  `yaml:"overall_average" json:"overall_average"`
	Sections    []SectionSummary         `yaml:"sections" json:"sections"`
	Breakdown   []SectionBreakdown       `yaml:"breakdown" json:"breakdown"`
	Strengths   []RankedItem             `yaml:"strengths" json:"strengths"`
	Critical    []RankedItem             `yaml:"critical" json:"critical"`
	Profile     Demographics             `yaml:"profile" json:"profile"`
}

// OverviewRow is one company's row in the comparison overview table.
// SectionAverages is aligned with ComparisonReportData.Sections.
type OverviewRow struct {
	Company         CompanyInfo  `yaml:"company" json:"company"`
	SectionAverages []float64    `yaml:"section_averages" json:"section_averages"`
	SectionBands    []stats.Band `yaml:"section_bands" json:"section_bands"`
	Overall         float64      `yaml:"overall" json:"overall"`
}

// MatrixRow is one question's averages broken out by company. Averages
// is aligned with the report's company order.
type MatrixRow struct {
	QuestionID string    `yaml:"question" json:"question"`
	Number     int       `yaml:"number" json:"number"`
	Text       string    `yaml:"text" json:"text"`
	Averages   []float64 `yaml:"averages" json:"averages"`
}

// SectionMatrix is the per-section question-by-company table.
type SectionMatrix struct {
	SectionID string      `yaml:"section" json:"section"`
	Name      string      `yaml:"name" json:"name"`
	Questions []MatrixRow `yaml:"questions" json:"questions"`
}

// ComparisonReportData is the complete multi-company comparison report.
// Companies appear everywhere in the caller-supplied order.
type ComparisonReportData struct {
	Report   Header           `yaml:"report" json:"report"`
	Sections []survey.Section `yaml:"sections" json:"sections"`
	Overview []OverviewRow    `yaml:"overview" json:"overview"`
	Matrix   []SectionMatrix  `yaml:"matrix" json:"matrix"`
}

// RawRow is one respondent's row in the raw-data export. Answers holds
// the decimal answer per question in schema order; a missing answer is
// the empty string, never "0".
type RawRow struct {
	RespondentID string     `yaml:"respondent" json:"respondent"`
	CompanyName  string     `yaml:"company" json:"company"`
	Sex          survey.Sex `yaml:"sex" json:"sex"`
	Age          int        `yaml:"age" json:"age"`
	Sector       string     `yaml:"sector" json:"sector"`
	Comment      string     `yaml:"comment,omitempty" json:"comment,omitempty"`
	Answers      []string   `yaml:"answers" json:"answers"`
}

// RawExportData is the complete raw-data export. Columns names the
// answer columns (section id + ordinal) in the same order as each row's
// Answers slice.
type RawExportData struct {
	Report  Header   `yaml:"report" json:"report"`
	Columns []string `yaml:"columns" json:"columns"`
	Rows    []RawRow `yaml:"rows" json:"rows"`
}

// HeatmapCell is one question-by-company cell: the raw average and the
// band of its oriented value.
type HeatmapCell struct {
	CompanyID string     `yaml:"company" json:"company"`
	Average   float64    `yaml:"average" json:"average"`
	Band      stats.Band `yaml:"band" json:"band"`
}

// HeatmapRow is one question's cells across every company.
type HeatmapRow struct {
	QuestionID string        `yaml:"question" json:"question"`
	Number     int           `yaml:"number" json:"number"`
	Text       string        `yaml:"text" json:"text"`
	Cells      []HeatmapCell `yaml:"cells" json:"cells"`
}

// HeatmapData is the single-section cross-company matrix export. Unlike
// the comparison report, it always covers every company in the store.
type HeatmapData struct {
	Report    Header        `yaml:"report" json:"report"`
	Section   survey.Section `yaml:"section" json:"section"`
	Companies []CompanyInfo `yaml:"companies" json:"companies"`
	Rows      []HeatmapRow  `yaml:"rows" json:"rows"`
}
