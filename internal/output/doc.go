package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/proartlab/proart/internal/report"
	"github.com/proartlab/proart/internal/stats"
)

// Paginated document model. The builders below translate gathered report
// data into pages of headed, aligned, tone-annotated tables; how a page
// is drawn (terminal, PDF, ...) is the renderer's concern. Builders copy
// values verbatim from the report data, so the document can never show a
// number the tabular export does not.

// DocTitle is the fixed document title of every page header.
const DocTitle = "PROART"

// DocSubtitleLine is the questionnaire's long name, shown under the title.
const DocSubtitleLine = "Psychosocial Risk Assessment Protocol at Work"

// Tone classifies a cell for coloring.
type Tone string

const (
	// ToneNone leaves the cell unstyled.
	ToneNone Tone = ""
	// ToneGood marks a good classification or a positive difference.
	ToneGood Tone = "good"
	// ToneModerate marks a moderate classification.
	ToneModerate Tone = "moderate"
	// ToneCritical marks a critical classification or a negative difference.
	ToneCritical Tone = "critical"
)

// toneOf maps a classification band to its cell tone.
func toneOf(b stats.Band) Tone {
	switch b {
	case stats.BandGood:
		return ToneGood
	case stats.BandModerate:
		return ToneModerate
	default:
		return ToneCritical
	}
}

// toneOfSign maps a signed difference to a tone: non-negative reads as
// good, negative as critical.
func toneOfSign(v float64) Tone {
	if v >= 0 {
		return ToneGood
	}
	return ToneCritical
}

// Align is the horizontal alignment of a table column.
type Align int

const (
	// AlignLeft aligns cell text to the left edge.
	AlignLeft Align = iota
	// AlignCenter centers cell text.
	AlignCenter
	// AlignRight aligns cell text to the right edge.
	AlignRight
)

// Cell is one table cell: display text plus an optional tone.
type Cell struct {
	Text string `yaml:"text" json:"text"`
	Tone Tone   `yaml:"tone,omitempty" json:"tone,omitempty"`
}

// Column describes a table column heading and its alignment.
type Column struct {
	Title string `yaml:"title" json:"title"`
	Align Align  `yaml:"align" json:"align"`
}

// Table is a titled table block.
type Table struct {
	Title   string   `yaml:"title,omitempty" json:"title,omitempty"`
	Columns []Column `yaml:"columns" json:"columns"`
	Rows    [][]Cell `yaml:"rows" json:"rows"`
}

// KPI is one headline figure on a report cover page.
type KPI struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// RankList is a titled, ordered list block (strengths, critical items).
type RankList struct {
	Title string   `yaml:"title" json:"title"`
	Tone  Tone     `yaml:"tone,omitempty" json:"tone,omitempty"`
	Items []string `yaml:"items" json:"items"`
}

// Block is one content block of a page. Exactly one field is set.
type Block struct {
	KPIs  []KPI     `yaml:"kpis,omitempty" json:"kpis,omitempty"`
	Table *Table    `yaml:"table,omitempty" json:"table,omitempty"`
	List  *RankList `yaml:"list,omitempty" json:"list,omitempty"`
}

// PageHeader is the fixed header of every page.
type PageHeader struct {
	Title    string `yaml:"title" json:"title"`
	Entity   string `yaml:"entity" json:"entity"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Date     string `yaml:"date" json:"date"`
}

// PageFooter is the fixed footer of every page.
type PageFooter struct {
	PageNumber int    `yaml:"page" json:"page"`
	Notice     string `yaml:"notice" json:"notice"`
}

// Page is one logical page of a document.
type Page struct {
	Header PageHeader `yaml:"header" json:"header"`
	Blocks []Block    `yaml:"blocks" json:"blocks"`
	Footer PageFooter `yaml:"footer" json:"footer"`
}

// Document is the complete paginated export.
type Document struct {
	Title string `yaml:"title" json:"title"`
	Pages []Page `yaml:"pages" json:"pages"`
}

// DefaultNotice is the confidentiality notice printed in page footers.
const DefaultNotice = "PROART Report - Confidential"

// docBuilder tracks the running page number while pages are appended.
type docBuilder struct {
	doc    *Document
	notice string
}

func newDocBuilder(title, notice string) *docBuilder {
	if notice == "" {
		notice = DefaultNotice
	}
	return &docBuilder{doc: &Document{Title: title}, notice: notice}
}

func (b *docBuilder) page(entity, subtitle, date string, blocks ...Block) {
	b.doc.Pages = append(b.doc.Pages, Page{
		Header: PageHeader{Title: DocTitle, Entity: entity, Subtitle: subtitle, Date: date},
		Blocks: blocks,
		Footer: PageFooter{PageNumber: len(b.doc.Pages) + 1, Notice: b.notice},
	})
}

// BuildCompanyDocument assembles the paginated single-company report:
// a cover page with KPIs, the section summary, and the rankings,
// followed by one detail page per section.
func BuildCompanyDocument(data *report.CompanyReportData, notice string) *Document {
	b := newDocBuilder("PROART Report - "+data.Company.Name, notice)
	date := data.Report.GeneratedAt.Format(dateLayout)

	summary := &Table{
		Title: "Section Summary",
		Columns: []Column{
			{Title: "Section", Align: AlignLeft},
			{Title: "Average", Align: AlignCenter},
			{Title: "Classification", Align: AlignCenter},
			{Title: "vs. All", Align: AlignCenter},
		},
	}
	for _, s := range data.Sections {
		summary.Rows = append(summary.Rows, []Cell{
			{Text: s.Name},
			{Text: avg(s.Average)},
			{Text: s.Band.Label(), Tone: toneOf(s.Band)},
			{Text: signed(s.DiffVsAll), Tone: toneOfSign(s.DiffVsAll)},
		})
	}

	strengths := &RankList{Title: "Strengths", Tone: ToneGood}
	for i, item := range data.Strengths {
		strengths.Items = append(strengths.Items, fmt.Sprintf("%d. %s (%s)", i+1, item.Text, avg(item.Average)))
	}
	critical := &RankList{Title: "Critical Items", Tone: ToneCritical}
	for i, item := range data.Critical {
		critical.Items = append(critical.Items, fmt.Sprintf("%d. %s (%s)", i+1, item.Text, avg(item.Average)))
	}

	b.page(data.Company.Name, "Company Report", date,
		Block{KPIs: []KPI{
			{Label: "Responses", Value: strconv.Itoa(data.Company.Respondents)},
			{Label: "Overall Average", Value: avg(data.Overall)},
			{Label: "Sector", Value: data.Company.Sector},
			{Label: "Employees", Value: strconv.Itoa(data.Company.Employees)},
		}},
		Block{Table: summary},
		Block{List: strengths},
		Block{List: critical},
	)

	for _, sb := range data.Breakdown {
		detail := &Table{
			Columns: []Column{
				{Title: "No", Align: AlignCenter},
				{Title: "Question", Align: AlignLeft},
				{Title: "Average", Align: AlignCenter},
			},
		}
		for _, label := range data.ScaleLabels {
			detail.Columns = append(detail.Columns, Column{Title: label, Align: AlignCenter})
		}
		for _, q := range sb.Questions {
			row := []Cell{
				{Text: strconv.Itoa(q.Number)},
				{Text: q.Text},
				{Text: avg(q.Average), Tone: toneOf(q.Band)},
			}
			for _, p := range q.Percentages {
				row = append(row, Cell{Text: strconv.Itoa(p) + "%"})
			}
			detail.Rows = append(detail.Rows, row)
		}
		b.page(data.Company.Name, "Detail - "+sb.Name, date, Block{Table: detail})
	}

	// Demographics page
	sexTable := &Table{
		Title: "Respondent Profile",
		Columns: []Column{
			{Title: "Sex", Align: AlignLeft},
			{Title: "Count", Align: AlignCenter},
			{Title: "%", Align: AlignCenter},
		},
	}
	for _, s := range data.Profile.Sex {
		sexTable.Rows = append(sexTable.Rows, []Cell{
			{Text: s.Label},
			{Text: strconv.Itoa(s.Count)},
			{Text: strconv.Itoa(s.Percentage) + "%"},
		})
	}
	ageTable := &Table{
		Columns: []Column{
			{Title: "Age band", Align: AlignLeft},
			{Title: "Count", Align: AlignCenter},
		},
	}
	for _, a := range data.Profile.AgeBands {
		ageTable.Rows = append(ageTable.Rows, []Cell{
			{Text: a.Label},
			{Text: strconv.Itoa(a.Count)},
		})
	}
	b.page(data.Company.Name, "Respondent Profile", date, Block{Table: sexTable}, Block{Table: ageTable})

	return b.doc
}

// BuildComparisonDocument assembles the paginated comparison report:
// an overview page followed by one question-matrix page per section.
func BuildComparisonDocument(data *report.ComparisonReportData, notice string) *Document {
	names := make([]string, 0, len(data.Overview))
	for _, row := range data.Overview {
		names = append(names, row.Company.Name)
	}
	entity := strings.Join(names, " vs ")

	b := newDocBuilder("PROART Comparison Report", notice)
	date := data.Report.GeneratedAt.Format(dateLayout)

	overview := &Table{
		Title: "Overview",
		Columns: []Column{
			{Title: "Company", Align: AlignLeft},
			{Title: "Sector", Align: AlignLeft},
			{Title: "Responses", Align: AlignCenter},
		},
	}
	for _, sec := range data.Sections {
		overview.Columns = append(overview.Columns, Column{Title: sec.ShortName, Align: AlignCenter})
	}
	overview.Columns = append(overview.Columns, Column{Title: "Overall", Align: AlignCenter})
	for _, row := range data.Overview {
		cells := []Cell{
			{Text: row.Company.Name},
			{Text: row.Company.Sector},
			{Text: strconv.Itoa(row.Company.Respondents)},
		}
		for i, a := range row.SectionAverages {
			cells = append(cells, Cell{Text: avg(a), Tone: toneOf(row.SectionBands[i])})
		}
		cells = append(cells, Cell{Text: avg(row.Overall)})
		overview.Rows = append(overview.Rows, cells)
	}

	b.page(entity, "Comparison Report", date, Block{Table: overview})

	for _, m := range data.Matrix {
		matrix := &Table{
			Columns: []Column{
				{Title: "No", Align: AlignCenter},
				{Title: "Question", Align: AlignLeft},
			},
		}
		for _, name := range names {
			matrix.Columns = append(matrix.Columns, Column{Title: name, Align: AlignCenter})
		}
		for _, q := range m.Questions {
			row := []Cell{
				{Text: strconv.Itoa(q.Number)},
				{Text: q.Text},
			}
			for _, a := range q.Averages {
				row = append(row, Cell{Text: avg(a)})
			}
			matrix.Rows = append(matrix.Rows, row)
		}
		b.page("Comparison - "+m.Name, "By Question", date, Block{Table: matrix})
	}

	return b.doc
}
