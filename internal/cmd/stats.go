package cmd

import (
	"fmt"
	"io"

	"github.com/proartlab/proart/internal/stats"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute averages and answer distributions",
	Long: `Compute per-question averages, section averages, and answer
distributions over the imported responses.

All subcommands accept --company to restrict the pool to one company;
without it the whole pool is used. Averages are arithmetic means over
the pool on the raw 1-5 scale, rounded to two decimals.

Examples:
  proart stats question m3
  proart stats question m3 --company acme
  proart stats section experience
  proart stats dist c1 --company acme`,
}

var statsCompany string

// statsQuestionCmd represents the stats question command
var statsQuestionCmd = &cobra.Command{
	Use:   "question <question-id>",
	Short: "Average answer for one question",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsQuestion,
}

// statsSectionCmd represents the stats section command
var statsSectionCmd = &cobra.Command{
	Use:   "section <section-id>",
	Short: "Average across a section's questions",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsSection,
}

// statsDistCmd represents the stats dist command
var statsDistCmd = &cobra.Command{
	Use:   "dist <question-id>",
	Short: "Answer distribution for one question",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsDist,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.PersistentFlags().StringVar(&statsCompany, "company", "", "Restrict the pool to one company id")
	statsCmd.AddCommand(statsQuestionCmd)
	statsCmd.AddCommand(statsSectionCmd)
	statsCmd.AddCommand(statsDistCmd)
}

func runStatsQuestion(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine, closeFn, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	q, err := engine.Schema().Question(args[0])
	if err != nil {
		return err
	}
	avg, err := engine.QuestionAverage(q.ID, statsCompany)
	if err != nil {
		return err
	}
	pool, err := engine.PoolSize(statsCompany)
	if err != nil {
		return err
	}
	sec, err := engine.Schema().Section(q.SectionID)
	if err != nil {
		return err
	}
	band := stats.ClassifyWithThresholds(stats.Oriented(sec, avg), thresholdsOf(cfg))

	return withOutput(func(w io.Writer) error {
		fmt.Fprintf(w, "%s: %s\n", q.ID, q.Text)
		fmt.Fprintf(w, "Average: %.2f (%s, n=%d)\n", avg, band.Label(), pool)
		return nil
	})
}

func runStatsSection(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine, closeFn, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	sec, err := engine.Schema().Section(args[0])
	if err != nil {
		return err
	}
	avg, err := engine.SectionAverage(sec.ID, statsCompany)
	if err != nil {
		return err
	}
	pool, err := engine.PoolSize(statsCompany)
	if err != nil {
		return err
	}
	band := stats.ClassifyWithThresholds(stats.Oriented(sec, avg), thresholdsOf(cfg))

	return withOutput(func(w io.Writer) error {
		fmt.Fprintf(w, "%s [%s]\n", sec.Name, sec.ID)
		fmt.Fprintf(w, "Average: %.2f (%s, n=%d)\n", avg, band.Label(), pool)
		return nil
	})
}

func runStatsDist(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine, closeFn, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	q, err := engine.Schema().Question(args[0])
	if err != nil {
		return err
	}
	buckets, err := engine.AnswerDistribution(q.ID, statsCompany)
	if err != nil {
		return err
	}

	return withOutput(func(w io.Writer) error {
		fmt.Fprintf(w, "%s: %s\n", q.ID, q.Text)
		for _, b := range buckets {
			fmt.Fprintf(w, "  %d %-10s %4d  %3d%%\n", b.Value, engine.Schema().ScaleLabel(b.Value), b.Count, b.Percentage)
		}
		return nil
	})
}
