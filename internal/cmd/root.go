// Package cmd contains all CLI commands for proart.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is the current version of proart
	Version = "0.1.0"

	// Global flags
	verbose      bool
	configPath   string
	dataDir      string
	outputFormat string
	outputPath   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "proart",
	Short: "Psychosocial risk survey aggregation and reporting",
	Long: `proart ingests PROART questionnaire responses collected per company and
produces aggregate metrics and exportable reports.

It stores respondents in a local SQLite database, computes per-question,
per-section, and per-company statistics over an immutable snapshot of
that store, and assembles them into consistent reports: a delimited CSV
export and a paginated document export that always agree on every number.

Survey structure:
  Four sections (Work Context, Management Style, Lived Experience,
  Health Impact) with 91 questions answered on a 1-5 frequency scale.
  Lived Experience and Health Impact are inverted: higher raw scores
  mean worse outcomes, and rankings account for that.

Main capabilities:
  - Import collected responses and the company registry from CSV
  - Query question and section averages and answer distributions
  - Generate single-company, comparison, raw-data, and heatmap reports
  - Serve aggregates to AI agents over MCP

Global Flags:
  --format    Output format: yaml (default) | json | csv | doc
  --output    Write to a file instead of stdout
  --data-dir  Data directory (default: nearest .proart)

Examples:
  proart init                          # Create the .proart data directory
  proart import --responses r.csv      # Ingest collected responses
  proart stats section context         # Section average over all companies
  proart report company acme --format csv -o acme.csv
  proart report compare acme globex    # Compare two companies

See 'proart <command> --help' for command-specific options.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .proart/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default: nearest .proart)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (csv|doc|yaml|json)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
}

// verbosef prints progress output to stderr when --verbose is set.
func verbosef(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
