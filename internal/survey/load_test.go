package survey

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSchema(t *testing.T) {
	content := `scale_labels: [Nunca, Raramente, "As vezes", Frequentemente, Sempre]
sections:
  - id: a
    name: Alpha
    short_name: Alp
    index: 1
  - id: b
    name: Beta
    short_name: Bet
    index: 2
    inverted: true
questions:
  - id: a1
    section: a
    number: 1
    text: First question
  - id: b1
    section: b
    number: 1
    text: Second question
`
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}

	if got := len(s.Sections()); got != 2 {
		t.Errorf("got %d sections, want 2", got)
	}
	if !s.Inverted("b") {
		t.Error("section b should be inverted")
	}
	if got := s.ScaleLabel(1); got != "Nunca" {
		t.Errorf("ScaleLabel(1) = %q, want Nunca", got)
	}
}

func TestLoadSchemaDefaults(t *testing.T) {
	// Omitting scale_labels falls back to the built-in labels.
	content := `sections:
  - id: a
    name: Alpha
    index: 1
questions:
  - id: a1
    section: a
    number: 1
    text: Only question
`
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}
	if got := s.ScaleLabel(3); got != DefaultScaleLabels[2] {
		t.Errorf("ScaleLabel(3) = %q, want %q", got, DefaultScaleLabels[2])
	}
}

func TestLoadSchemaErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSchema(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("scale_labels: [only, two]\nsections:\n  - id: a\n    index: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSchema(bad); err == nil {
		t.Error("wrong label count should fail")
	}
}
