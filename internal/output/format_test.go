package output

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"CSV", FormatCSV, false},
		{" doc ", FormatDoc, false},
		{"yaml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWriteData(t *testing.T) {
	payload := map[string]interface{}{"average": 3.42, "pool": 12}

	var yb strings.Builder
	if err := WriteData(&yb, payload, FormatYAML); err != nil {
		t.Fatalf("WriteData yaml failed: %v", err)
	}
	var fromYAML map[string]interface{}
	if err := yaml.Unmarshal([]byte(yb.String()), &fromYAML); err != nil {
		t.Fatalf("yaml output did not round-trip: %v", err)
	}

	var jb strings.Builder
	if err := WriteData(&jb, payload, FormatJSON); err != nil {
		t.Fatalf("WriteData json failed: %v", err)
	}
	var fromJSON map[string]interface{}
	if err := json.Unmarshal([]byte(jb.String()), &fromJSON); err != nil {
		t.Fatalf("json output did not round-trip: %v", err)
	}
	if fromJSON["pool"].(float64) != 12 {
		t.Errorf("pool = %v", fromJSON["pool"])
	}
}
