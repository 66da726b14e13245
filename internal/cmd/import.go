package cmd

import (
	"fmt"
	"os"

	"github.com/proartlab/proart/internal/store"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import companies and survey responses from CSV files",
	Long: `Import companies and survey responses from CSV files into the database.

Company files carry one company per row with the columns id, name,
sector and employees. Response files carry one respondent per row with
the demographic columns (respondent, company, sex, age, sector,
comment) followed by one column per question id. Blank answer cells
are kept as missing answers.

Importing the same respondent id again replaces its previous answers.

Examples:
  proart import --companies companies.csv
  proart import --responses wave1.csv
  proart import --companies companies.csv --responses wave1.csv`,
	RunE: runImport,
}

var (
	importCompanies string
	importResponses string
)

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importCompanies, "companies", "", "CSV file with the company registry")
	importCmd.Flags().StringVar(&importResponses, "responses", "", "CSV file with survey responses")
}

func runImport(cmd *cobra.Command, args []string) error {
	if importCompanies == "" && importResponses == "" {
		return fmt.Errorf("nothing to import: pass --companies and/or --responses")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	schema, err := loadSchema(cfg)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if importCompanies != "" {
		f, err := os.Open(importCompanies)
		if err != nil {
			return fmt.Errorf("open companies file: %w", err)
		}
		companies, err := store.ReadCompaniesCSV(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", importCompanies, err)
		}
		if err := db.ImportCompanies(companies); err != nil {
			return fmt.Errorf("import companies: %w", err)
		}
		fmt.Printf("Imported %d companies from %s\n", len(companies), importCompanies)
	}

	if importResponses != "" {
		f, err := os.Open(importResponses)
		if err != nil {
			return fmt.Errorf("open responses file: %w", err)
		}
		respondents, err := store.ReadRespondentsCSV(f, schema)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", importResponses, err)
		}
		if err := db.ImportRespondents(respondents); err != nil {
			return fmt.Errorf("import responses: %w", err)
		}
		fmt.Printf("Imported %d respondents from %s\n", len(respondents), importResponses)
	}

	companies, respondents, err := db.Counts()
	if err != nil {
		return err
	}
	verbosef("database now holds %d companies, %d respondents", companies, respondents)

	return nil
}
