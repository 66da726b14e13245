package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal renderer for the paginated document model. Band tones map to
// three fixed colors; numbers and text come verbatim from the document.
var (
	termTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	termSubtitle = lipgloss.NewStyle().Faint(true)
	termHeading  = lipgloss.NewStyle().Bold(true)
	termColumn   = lipgloss.NewStyle().Bold(true).Underline(true)
	termFooter   = lipgloss.NewStyle().Faint(true)
	termKPIValue = lipgloss.NewStyle().Bold(true)

	termGood     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	termModerate = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	termCritical = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func toneStyle(t Tone) lipgloss.Style {
	switch t {
	case ToneGood:
		return termGood
	case ToneModerate:
		return termModerate
	case ToneCritical:
		return termCritical
	default:
		return lipgloss.NewStyle()
	}
}

// RenderDocument writes the document to w as styled terminal text, one
// page after another separated by a rule.
func RenderDocument(w io.Writer, doc *Document) error {
	var b strings.Builder

	for _, page := range doc.Pages {
		renderHeader(&b, page.Header)
		for _, block := range page.Blocks {
			renderBlock(&b, block)
		}
		renderFooter(&b, page.Footer)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderHeader(b *strings.Builder, h PageHeader) {
	b.WriteString(termTitle.Render(h.Title))
	b.WriteString("  ")
	b.WriteString(termHeading.Render(h.Entity))
	b.WriteByte('\n')
	b.WriteString(termSubtitle.Render(h.Subtitle + "  |  " + h.Date))
	b.WriteString("\n\n")
}

func renderFooter(b *strings.Builder, f PageFooter) {
	b.WriteString(termFooter.Render(fmt.Sprintf("%s  |  page %d", f.Notice, f.PageNumber)))
	b.WriteString("\n")
	b.WriteString(termFooter.Render(strings.Repeat("-", 72)))
	b.WriteString("\n\n")
}

func renderBlock(b *strings.Builder, block Block) {
	switch {
	case len(block.KPIs) > 0:
		renderKPIs(b, block.KPIs)
	case block.Table != nil:
		renderTable(b, block.Table)
	case block.List != nil:
		renderList(b, block.List)
	}
}

func renderKPIs(b *strings.Builder, kpis []KPI) {
	for i, kpi := range kpis {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(kpi.Label + ": " + termKPIValue.Render(kpi.Value))
	}
	b.WriteString("\n\n")
}

func renderList(b *strings.Builder, list *RankList) {
	b.WriteString(toneStyle(list.Tone).Bold(true).Render(list.Title))
	b.WriteByte('\n')
	for _, item := range list.Items {
		b.WriteString("  " + item + "\n")
	}
	b.WriteByte('\n')
}

func renderTable(b *strings.Builder, t *Table) {
	if t.Title != "" {
		b.WriteString(termHeading.Render(t.Title))
		b.WriteByte('\n')
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = lipgloss.Width(col.Title)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell.Text) > widths[i] {
				widths[i] = lipgloss.Width(cell.Text)
			}
		}
	}

	for i, col := range t.Columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(termColumn.Render(pad(col.Title, widths[i], col.Align)))
	}
	b.WriteByte('\n')

	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			align := AlignLeft
			if i < len(t.Columns) {
				align = t.Columns[i].Align
			}
			b.WriteString(toneStyle(cell.Tone).Render(pad(cell.Text, widths[i], align)))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

// pad aligns text within a fixed cell width.
func pad(s string, width int, align Align) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
