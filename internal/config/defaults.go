package config

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Survey: SurveyConfig{
			SchemaFile: "",
		},
		Classify: ClassifyConfig{
			GoodThreshold:     4.0,
			ModerateThreshold: 3.0,
		},
		Report: ReportConfig{
			Notice: "PROART Report - Confidential",
		},
		Output: OutputConfig{
			DefaultFormat: "yaml",
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	// Survey: use loaded schema file if set
	result.Survey = defaults.Survey
	if loaded.Survey.SchemaFile != "" {
		result.Survey.SchemaFile = loaded.Survey.SchemaFile
	}

	// Classify: use loaded thresholds if non-zero
	result.Classify = defaults.Classify
	if loaded.Classify.GoodThreshold != 0 {
		result.Classify.GoodThreshold = loaded.Classify.GoodThreshold
	}
	if loaded.Classify.ModerateThreshold != 0 {
		result.Classify.ModerateThreshold = loaded.Classify.ModerateThreshold
	}

	// Report: use loaded notice if non-empty
	result.Report = defaults.Report
	if loaded.Report.Notice != "" {
		result.Report.Notice = loaded.Report.Notice
	}

	// Output: use loaded format if non-empty
	result.Output = defaults.Output
	if loaded.Output.DefaultFormat != "" {
		result.Output.DefaultFormat = loaded.Output.DefaultFormat
	}

	return result
}
