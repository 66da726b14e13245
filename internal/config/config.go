// Package config loads and validates proart configuration from the
// .proart directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the proart configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the proart data directory
const ConfigDirName = ".proart"

// Config holds all proart configuration
type Config struct {
	Survey   SurveyConfig   `yaml:"survey"`
	Classify ClassifyConfig `yaml:"classify"`
	Report   ReportConfig   `yaml:"report"`
	Output   OutputConfig   `yaml:"output"`
}

// SurveyConfig holds configuration for the questionnaire definition
type SurveyConfig struct {
	// SchemaFile points at a YAML questionnaire definition. Empty means
	// the built-in PROART schema.
	SchemaFile string `yaml:"schema_file"`
}

// ClassifyConfig holds the classification thresholds
type ClassifyConfig struct {
	GoodThreshold     float64 `yaml:"good_threshold"`
	ModerateThreshold float64 `yaml:"moderate_threshold"`
}

// ReportConfig holds configuration for report synthesis
type ReportConfig struct {
	// Notice is the confidentiality notice in document footers.
	Notice string `yaml:"notice"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .proart/config.yaml, falling back to defaults.
// It searches for the data directory starting from workDir and walking
// up the directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		// No data dir found, return defaults
		return DefaultConfig(), nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())

	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .proart directory by walking up from startDir.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .proart directory if it doesn't exist.
func EnsureConfigDir(workDir string) (string, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)

	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	return configDir, nil
}

// Validate checks that config values are valid.
func Validate(cfg *Config) error {
	if _, err := parseFormat(cfg.Output.DefaultFormat); err != nil {
		return fmt.Errorf("%w: default_format must be one of %v, got %q",
			ErrInvalidConfig, ValidFormats, cfg.Output.DefaultFormat)
	}

	if cfg.Classify.GoodThreshold < 1 || cfg.Classify.GoodThreshold > 5 {
		return fmt.Errorf("%w: good_threshold must be within the answer scale [1,5], got %f",
			ErrInvalidConfig, cfg.Classify.GoodThreshold)
	}
	if cfg.Classify.ModerateThreshold < 1 || cfg.Classify.ModerateThreshold > 5 {
		return fmt.Errorf("%w: moderate_threshold must be within the answer scale [1,5], got %f",
			ErrInvalidConfig, cfg.Classify.ModerateThreshold)
	}
	if cfg.Classify.ModerateThreshold > cfg.Classify.GoodThreshold {
		return fmt.Errorf("%w: moderate_threshold %f exceeds good_threshold %f",
			ErrInvalidConfig, cfg.Classify.ModerateThreshold, cfg.Classify.GoodThreshold)
	}

	return nil
}

// ValidFormats lists the valid values for output default_format
var ValidFormats = []string{"csv", "doc", "yaml", "json"}

func parseFormat(s string) (string, error) {
	for _, valid := range ValidFormats {
		if s == valid {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid format %q", s)
}
