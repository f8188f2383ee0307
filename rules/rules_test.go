package rules

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `concession:
  - "Students: 50% off season tickets with a school/college certificate"
  - "Senior citizens: 40% off for men (60+), 50% for women (58+)"
luggage:
  - "Free allowance: 15 kg in second class, 30 kg in first class"
pass:
  - "Monthly season tickets cost roughly 15 single fares"
`

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing rules file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	r, err := Load(write(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !r.Available() {
		t.Fatal("rules should be available")
	}
	if len(r.Concession) != 2 || len(r.Luggage) != 1 || len(r.Pass) != 1 {
		t.Errorf("unexpected counts: %d/%d/%d", len(r.Concession), len(r.Luggage), len(r.Pass))
	}
}

func TestLoad_MissingFileDegrades(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if r.Available() {
		t.Error("empty rules should report unavailable")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := Load(write(t, "concession: {not: [valid")); err == nil {
		t.Error("malformed YAML should error")
	}
}
