package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Classify.GoodThreshold != 4.0 || cfg.Classify.ModerateThreshold != 3.0 {
		t.Errorf("thresholds = %+v", cfg.Classify)
	}
	if cfg.Output.DefaultFormat != "yaml" {
		t.Errorf("default format = %q", cfg.Output.DefaultFormat)
	}
	if cfg.Report.Notice == "" {
		t.Error("default notice is empty")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestMerge(t *testing.T) {
	loaded := &Config{}
	loaded.Classify.GoodThreshold = 4.5
	loaded.Output.DefaultFormat = "csv"

	merged := Merge(loaded, DefaultConfig())

	if merged.Classify.GoodThreshold != 4.5 {
		t.Errorf("good threshold = %v, want loaded 4.5", merged.Classify.GoodThreshold)
	}
	if merged.Classify.ModerateThreshold != 3.0 {
		t.Errorf("moderate threshold = %v, want default 3.0", merged.Classify.ModerateThreshold)
	}
	if merged.Output.DefaultFormat != "csv" {
		t.Errorf("format = %q, want loaded csv", merged.Output.DefaultFormat)
	}
	if merged.Report.Notice != DefaultConfig().Report.Notice {
		t.Errorf("notice = %q, want default", merged.Report.Notice)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"bad format", func(c *Config) { c.Output.DefaultFormat = "xml" }, false},
		{"good threshold off scale", func(c *Config) { c.Classify.GoodThreshold = 5.5 }, false},
		{"moderate threshold off scale", func(c *Config) { c.Classify.ModerateThreshold = 0.5 }, false},
		{"moderate above good", func(c *Config) { c.Classify.ModerateThreshold = 4.5 }, false},
		{"csv format", func(c *Config) { c.Output.DefaultFormat = "csv" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.ok && err != nil {
				t.Errorf("Validate failed: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate succeeded, want error")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error = %v, want ErrInvalidConfig", err)
				}
			}
		})
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := `classify:
  good_threshold: 4.2
report:
  notice: Handle with care
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Classify.GoodThreshold != 4.2 {
		t.Errorf("good threshold = %v", cfg.Classify.GoodThreshold)
	}
	if cfg.Report.Notice != "Handle with care" {
		t.Errorf("notice = %q", cfg.Report.Notice)
	}
	// Unset fields come from defaults.
	if cfg.Output.DefaultFormat != "yaml" {
		t.Errorf("format = %q", cfg.Output.DefaultFormat)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if cfg.Classify.GoodThreshold != 4.0 {
		t.Errorf("got %+v, want defaults", cfg.Classify)
	}
}

func TestLoadFromPathInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("output:\n  default_format: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestFindConfigDir(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, ConfigDirName)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	// Walks up from a nested directory to the containing data dir.
	found, err := FindConfigDir(nested)
	if err != nil {
		t.Fatalf("FindConfigDir failed: %v", err)
	}
	if found != dataDir {
		t.Errorf("found %q, want %q", found, dataDir)
	}
}

func TestFindConfigDirNotFound(t *testing.T) {
	if _, err := FindConfigDir(t.TempDir()); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestEnsureConfigDir(t *testing.T) {
	root := t.TempDir()

	dir, err := EnsureConfigDir(root)
	if err != nil {
		t.Fatalf("EnsureConfigDir failed: %v", err)
	}
	if dir != filepath.Join(root, ConfigDirName) {
		t.Errorf("dir = %q", dir)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("data directory not created: %v", err)
	}

	// Idempotent on an existing directory.
	again, err := EnsureConfigDir(root)
	if err != nil || again != dir {
		t.Errorf("second call = %q, %v", again, err)
	}
}
