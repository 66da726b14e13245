package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/proartlab/proart/internal/report"
)

// bom is the UTF-8 byte-order marker that spreadsheet applications use
// to detect the encoding of a CSV file.
const bom = "\uFEFF"

const dateLayout = "2006-01-02"

// csvWriter accumulates delimited rows. Fields containing the delimiter,
// quotes, or newlines are wrapped in quotes with inner quotes doubled.
type csvWriter struct {
	b strings.Builder
}

func newCSVWriter() *csvWriter {
	w := &csvWriter{}
	w.b.WriteString(bom)
	return w
}

func (w *csvWriter) row(fields ...string) {
	for i, f := range fields {
		if i > 0 {
			w.b.WriteByte(',')
		}
		w.b.WriteString(quoteField(f))
	}
	w.b.WriteByte('\n')
}

func (w *csvWriter) blank() {
	w.b.WriteByte('\n')
}

func (w *csvWriter) flush(out io.Writer) error {
	_, err := io.WriteString(out, w.b.String())
	return err
}

func quoteField(f string) string {
	if !strings.ContainsAny(f, ",\"\n") {
		return f
	}
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}

func avg(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func signed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if v >= 0 {
		return "+" + s
	}
	return s
}

// WriteCompanyCSV renders the single-company report as CSV.
func WriteCompanyCSV(out io.Writer, data *report.CompanyReportData) error {
	w := newCSVWriter()

	w.row("PROART REPORT - " + data.Company.Name)
	w.row("Sector: " + data.Company.Sector)
	w.row("Employees: " + strconv.Itoa(data.Company.Employees))
	w.row("Responses collected: " + strconv.Itoa(data.Company.Respondents))
	w.row("Generated: " + data.Report.GeneratedAt.Format(dateLayout))
	w.blank()

	w.row("SECTION SUMMARY")
	w.row("Section", "Average", "Classification")
	for _, s := range data.Sections {
		w.row(s.Name, avg(s.Average), s.Band.Label())
	}
	w.blank()

	for _, sb := range data.Breakdown {
		w.row("DETAIL - " + strings.ToUpper(sb.Name))
		header := []string{"No", "Question", "Average"}
		for _, label := range data.ScaleLabels {
			header = append(header, label+"(%)")
		}
		w.row(header...)
		for _, q := range sb.Questions {
			fields := []string{strconv.Itoa(q.Number), q.Text, avg(q.Average)}
			for _, p := range q.Percentages {
				fields = append(fields, strconv.Itoa(p))
			}
			w.row(fields...)
		}
		w.blank()
	}

	w.row("STRENGTHS")
	w.row("Rank", "Question", "Average")
	for i, item := range data.Strengths {
		w.row(strconv.Itoa(i+1), item.Text, avg(item.Average))
	}
	w.blank()

	w.row("CRITICAL ITEMS")
	w.row("Rank", "Question", "Average")
	for i, item := range data.Critical {
		w.row(strconv.Itoa(i+1), item.Text, avg(item.Average))
	}
	w.blank()

	w.row("RESPONDENT PROFILE")
	w.row("Sex", "Count", "%")
	for _, s := range data.Profile.Sex {
		w.row(s.Label, strconv.Itoa(s.Count), strconv.Itoa(s.Percentage)+"%")
	}
	w.blank()

	w.row("Age band", "Count")
	for _, a := range data.Profile.AgeBands {
		w.row(a.Label, strconv.Itoa(a.Count))
	}

	return w.flush(out)
}

// WriteComparisonCSV renders the multi-company comparison report as CSV.
func WriteComparisonCSV(out io.Writer, data *report.ComparisonReportData) error {
	w := newCSVWriter()

	names := make([]string, 0, len(data.Overview))
	for _, row := range data.Overview {
		names = append(names, row.Company.Name)
	}

	w.row("PROART COMPARISON REPORT")
	w.row("Companies: " + strings.Join(names, " | "))
	w.row("Generated: " + data.Report.GeneratedAt.Format(dateLayout))
	w.blank()

	w.row("OVERVIEW")
	header := []string{"Company", "Sector", "Responses"}
	for _, sec := range data.Sections {
		header = append(header, sec.ShortName)
	}
	header = append(header, "Overall")
	w.row(header...)
	for _, row := range data.Overview {
		fields := []string{row.Company.Name, row.Company.Sector, strconv.Itoa(row.Company.Respondents)}
		for _, a := range row.SectionAverages {
			fields = append(fields, avg(a))
		}
		fields = append(fields, avg(row.Overall))
		w.row(fields...)
	}
	w.blank()

	for _, m := range data.Matrix {
		w.row("QUESTION COMPARISON - " + strings.ToUpper(m.Name))
		w.row(append([]string{"No", "Question"}, names...)...)
		for _, q := range m.Questions {
			fields := []string{strconv.Itoa(q.Number), q.Text}
			for _, a := range q.Averages {
				fields = append(fields, avg(a))
			}
			w.row(fields...)
		}
		w.blank()
	}

	return w.flush(out)
}

// WriteRawCSV renders the raw-data export as CSV. Missing answers are
// emitted as empty fields, never zero.
func WriteRawCSV(out io.Writer, data *report.RawExportData) error {
	w := newCSVWriter()

	header := []string{"Respondent", "Company", "Sex", "Age", "Sector", "Comment"}
	header = append(header, data.Columns...)
	w.row(header...)

	for _, r := range data.Rows {
		fields := []string{r.RespondentID, r.CompanyName, string(r.Sex), strconv.Itoa(r.Age), r.Sector, r.Comment}
		fields = append(fields, r.Answers...)
		w.row(fields...)
	}

	return w.flush(out)
}

// WriteHeatmapCSV renders the single-section heatmap export as CSV.
func WriteHeatmapCSV(out io.Writer, data *report.HeatmapData) error {
	w := newCSVWriter()

	w.row("HEATMAP - " + strings.ToUpper(data.Section.Name))
	w.row("Generated: " + data.Report.GeneratedAt.Format(dateLayout))
	w.blank()

	header := []string{"Question"}
	for _, c := range data.Companies {
		header = append(header, c.Name)
	}
	w.row(header...)

	for _, row := range data.Rows {
		fields := []string{fmt.Sprintf("%d. %s", row.Number, row.Text)}
		for _, cell := range row.Cells {
			fields = append(fields, avg(cell.Average))
		}
		w.row(fields...)
	}

	return w.flush(out)
}
