package cmd

import (
	"fmt"
	"io"

	"github.com/proartlab/proart/internal/survey"
	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List the questionnaire sections and questions",
	Long: `List the questionnaire sections and questions in effect.

Without flags this prints every section with its questions. Use
--section to restrict the listing to one section.

Examples:
  proart schema
  proart schema --section experience`,
	RunE: runSchema,
}

var schemaSection string

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVar(&schemaSection, "section", "", "Limit to one section id")
}

func runSchema(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	schema, err := loadSchema(cfg)
	if err != nil {
		return err
	}

	sections := schema.Sections()
	if schemaSection != "" {
		sec, err := schema.Section(schemaSection)
		if err != nil {
			return err
		}
		sections = []survey.Section{sec}
	}

	return withOutput(func(w io.Writer) error {
		for i, sec := range sections {
			if i > 0 {
				fmt.Fprintln(w)
			}
			tag := ""
			if sec.Inverted {
				tag = " (inverted)"
			}
			fmt.Fprintf(w, "%s [%s]%s\n", sec.Name, sec.ID, tag)
			qs, err := schema.SectionQuestions(sec.ID)
			if err != nil {
				return err
			}
			for _, q := range qs {
				fmt.Fprintf(w, "  %2d. %-4s %s\n", q.Number, q.ID, q.Text)
			}
		}
		return nil
	})
}
