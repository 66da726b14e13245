package survey

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// schemaFile is the on-disk YAML layout of a questionnaire definition.
type schemaFile struct {
	ScaleLabels []string   `yaml:"scale_labels"`
	Sections    []Section  `yaml:"sections"`
	Questions   []Question `yaml:"questions"`
}

// LoadSchema reads a questionnaire definition from a YAML file and
// validates it. Scale labels default to the built-in labels when the
// file omits them.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	var f schemaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing schema file: %w", err)
	}

	labels := DefaultScaleLabels
	if len(f.ScaleLabels) > 0 {
		if len(f.ScaleLabels) != ScaleSize {
			return nil, fmt.Errorf("schema file has %d scale labels, want %d", len(f.ScaleLabels), ScaleSize)
		}
		copy(labels[:], f.ScaleLabels)
	}

	s, err := NewSchema(f.Sections, f.Questions, labels)
	if err != nil {
		return nil, fmt.Errorf("invalid schema in %s: %w", path, err)
	}
	return s, nil
}
