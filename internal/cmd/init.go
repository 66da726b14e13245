package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/proartlab/proart/internal/config"
	"github.com/proartlab/proart/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the .proart directory and survey database",
	Long: `Initialize the .proart directory, default config, and survey database in
the current directory.

This creates the structure proart needs to store the company registry
and ingested respondents.

Examples:
  proart init          # Initialize in current directory
  proart init --force  # Reinitialize (overwrites existing database)`,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Reinitialize even if .proart already exists")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	dir, err := config.EnsureConfigDir(cwd)
	if err != nil {
		return err
	}
	dbPath := filepath.Join(dir, "survey.db")

	_, err = os.Stat(dbPath)
	if err == nil {
		if !initForce {
			relPath, _ := filepath.Rel(cwd, dir)
			fmt.Printf("Already initialized at %s\n", relPath)
			return nil
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("removing existing database: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking database path: %w", err)
	}

	db, err := store.Open(dir)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	// Write a default config if none exists yet
	cfgPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		data, err := yaml.Marshal(config.DefaultConfig())
		if err != nil {
			return fmt.Errorf("marshal default config: %w", err)
		}
		if err := os.WriteFile(cfgPath, data, 0644); err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
	}

	relPath, _ := filepath.Rel(cwd, dir)
	fmt.Printf("Initialized proart database at %s\n", relPath)

	return nil
}
