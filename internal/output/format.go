// Package output renders gathered report data: delimited CSV for
// spreadsheet import, a paginated document model for document export,
// and YAML/JSON for machine consumption. Renderers never recompute a
// value; everything comes verbatim from the report package.
package output

import (
	"fmt"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatCSV is the delimited tabular export with a UTF-8 BOM.
	FormatCSV Format = "csv"

	// FormatDoc is the paginated document rendered to the terminal.
	FormatDoc Format = "doc"

	// FormatYAML is self-documenting YAML output of the report data.
	FormatYAML Format = "yaml"

	// FormatJSON is the JSON output format.
	FormatJSON Format = "json"
)

// ParseFormat parses a format string into a Format value.
// Accepts: "csv", "doc", "yaml", "json" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "doc":
		return FormatDoc, nil
	case "yaml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %q (expected csv, doc, yaml, or json)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}
