package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/proartlab/proart/internal/config"
	"github.com/proartlab/proart/internal/output"
	"github.com/proartlab/proart/internal/stats"
	"github.com/proartlab/proart/internal/store"
	"github.com/proartlab/proart/internal/survey"
)

// Shared helpers for command implementations

// loadConfig resolves the effective configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return config.Load(cwd)
}

// loadSchema returns the questionnaire schema: the config's schema file
// when one is set, the built-in PROART schema otherwise.
func loadSchema(cfg *config.Config) (*survey.Schema, error) {
	if cfg.Survey.SchemaFile != "" {
		verbosef("loading schema from %s", cfg.Survey.SchemaFile)
		return survey.LoadSchema(cfg.Survey.SchemaFile)
	}
	return survey.Default(), nil
}

// resolveDataDir returns the data directory, honoring --data-dir and
// falling back to the nearest .proart directory.
func resolveDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	dir, err := config.FindConfigDir(cwd)
	if err != nil {
		return "", fmt.Errorf("no %s directory found (run 'proart init' first)", config.ConfigDirName)
	}
	return dir, nil
}

// openDB opens the survey database in the resolved data directory.
func openDB() (*store.DB, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	return store.Open(dir)
}

// openEngine loads the schema and a store snapshot and returns the
// stats engine bound to them. The returned close function releases the
// underlying database; the snapshot stays valid after closing.
func openEngine(cfg *config.Config) (*stats.Engine, func() error, error) {
	schema, err := loadSchema(cfg)
	if err != nil {
		return nil, nil, err
	}

	db, err := openDB()
	if err != nil {
		return nil, nil, err
	}

	snap, err := db.LoadSnapshot(schema)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}
	verbosef("snapshot: %d companies, %d respondents", len(snap.Companies()), snap.Len())

	return stats.New(schema, snap), db.Close, nil
}

// thresholdsOf maps the configured classification cutoffs into the
// stats package's form.
func thresholdsOf(cfg *config.Config) stats.Thresholds {
	return stats.Thresholds{
		Good:     cfg.Classify.GoodThreshold,
		Moderate: cfg.Classify.ModerateThreshold,
	}
}

// resolveFormat returns the effective output format: the --format flag
// when given, the configured default otherwise.
func resolveFormat(cfg *config.Config) (output.Format, error) {
	if outputFormat != "" {
		return output.ParseFormat(outputFormat)
	}
	return output.ParseFormat(cfg.Output.DefaultFormat)
}

// withOutput runs write against the --output file, or stdout when no
// path was given.
func withOutput(write func(io.Writer) error) error {
	if outputPath == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	verbosef("wrote %s", outputPath)
	return nil
}
