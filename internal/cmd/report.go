package cmd

import (
	"fmt"
	"io"

	"github.com/proartlab/proart/internal/config"
	"github.com/proartlab/proart/internal/output"
	"github.com/proartlab/proart/internal/report"
	"github.com/spf13/cobra"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate survey reports",
	Long: `Generate survey reports over the imported responses.

Report types:
  company  - single-company report with section summaries, per-question
             breakdown, top strengths and critical items, and the
             respondent profile
  compare  - side-by-side comparison of two or more companies
  raw      - one row per respondent with every answer, for external tools
  heatmap  - one section's question averages across every company

Formats (--format): csv, doc, yaml, json. The doc format renders a
paginated report to the terminal; raw and heatmap are tabular only.

Examples:
  proart report company acme
  proart report company acme --format doc
  proart report compare acme globex --format csv -o compare.csv
  proart report raw --company acme -o raw.csv --format csv
  proart report heatmap experience --format csv`,
}

// reportCompanyCmd represents the report company command
var reportCompanyCmd = &cobra.Command{
	Use:   "company <company-id>",
	Short: "Single-company report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportCompany,
}

// reportCompareCmd represents the report compare command
var reportCompareCmd = &cobra.Command{
	Use:   "compare <company-id> <company-id> [company-id...]",
	Short: "Multi-company comparison report",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReportCompare,
}

// reportRawCmd represents the report raw command
var reportRawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Raw-data export, one row per respondent",
	Args:  cobra.NoArgs,
	RunE:  runReportRaw,
}

// reportHeatmapCmd represents the report heatmap command
var reportHeatmapCmd = &cobra.Command{
	Use:   "heatmap <section-id>",
	Short: "Question-by-company heatmap for one section",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportHeatmap,
}

var reportRawCompany string

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportCompanyCmd)
	reportCmd.AddCommand(reportCompareCmd)
	reportCmd.AddCommand(reportRawCmd)
	reportCmd.AddCommand(reportHeatmapCmd)
	reportRawCmd.Flags().StringVar(&reportRawCompany, "company", "", "Restrict the export to one company id")
}

// openGatherer builds a report gatherer over the current snapshot with
// the configured thresholds applied.
func openGatherer(cfg *config.Config) (*report.Gatherer, func() error, error) {
	engine, closeFn, err := openEngine(cfg)
	if err != nil {
		return nil, nil, err
	}
	g := report.NewGatherer(engine)
	g.SetThresholds(thresholdsOf(cfg))
	return g, closeFn, nil
}

func runReportCompany(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}

	g, closeFn, err := openGatherer(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	data, err := g.CompanyReport(args[0])
	if err != nil {
		return err
	}

	return withOutput(func(w io.Writer) error {
		switch format {
		case output.FormatCSV:
			return output.WriteCompanyCSV(w, data)
		case output.FormatDoc:
			return output.RenderDocument(w, output.BuildCompanyDocument(data, cfg.Report.Notice))
		default:
			return output.WriteData(w, data, format)
		}
	})
}

func runReportCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}

	g, closeFn, err := openGatherer(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	data, err := g.ComparisonReport(args)
	if err != nil {
		return err
	}

	return withOutput(func(w io.Writer) error {
		switch format {
		case output.FormatCSV:
			return output.WriteComparisonCSV(w, data)
		case output.FormatDoc:
			return output.RenderDocument(w, output.BuildComparisonDocument(data, cfg.Report.Notice))
		default:
			return output.WriteData(w, data, format)
		}
	})
}

func runReportRaw(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}
	if format == output.FormatDoc {
		return fmt.Errorf("raw export has no doc rendering; use csv, yaml or json")
	}

	g, closeFn, err := openGatherer(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	data, err := g.RawExport(reportRawCompany)
	if err != nil {
		return err
	}

	return withOutput(func(w io.Writer) error {
		if format == output.FormatCSV {
			return output.WriteRawCSV(w, data)
		}
		return output.WriteData(w, data, format)
	})
}

func runReportHeatmap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}
	if format == output.FormatDoc {
		return fmt.Errorf("heatmap has no doc rendering; use csv, yaml or json")
	}

	g, closeFn, err := openGatherer(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	data, err := g.Heatmap(args[0])
	if err != nil {
		return err
	}

	return withOutput(func(w io.Writer) error {
		if format == output.FormatCSV {
			return output.WriteHeatmapCSV(w, data)
		}
		return output.WriteData(w, data, format)
	})
}
