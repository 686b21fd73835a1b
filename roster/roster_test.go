package roster

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	r := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	names := r.Names()
	if len(names) != len(DefaultNames) {
		t.Fatalf("Expected %d default entrants, got %d", len(DefaultNames), len(names))
	}
	if names[0] != DefaultNames[0] {
		t.Errorf("Expected first entrant %q, got %q", DefaultNames[0], names[0])
	}
}

func TestLoad_UnparseableFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	r := Load(path)
	if r.Len() != len(DefaultNames) {
		t.Errorf("Expected default roster, got %d entrants", r.Len())
	}
}

func TestReplaceAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	r := Load(path)

	if err := r.Replace([]string{"Ana", "Beto", "Carmen"}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if r.Len() != 3 {
		t.Fatalf("Expected 3 entrants, got %d", r.Len())
	}

	// Changes persist across a reload
	reloaded := Load(path)
	names := reloaded.Names()
	if len(names) != 3 || names[0] != "Ana" || names[2] != "Carmen" {
		t.Errorf("Reloaded roster mismatch: %v", names)
	}
}

func TestReplace_StripsBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	r := Load(path)

	if err := r.Replace([]string{"  Ana  ", "", "   ", "Beto", "\t"}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	names := r.Names()
	if len(names) != 2 {
		t.Fatalf("Expected blanks stripped, got %v", names)
	}
	if names[0] != "Ana" || names[1] != "Beto" {
		t.Errorf("Expected trimmed names, got %v", names)
	}
}

func TestName_OutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	r := Load(path)
	if err := r.Replace([]string{"Ana"}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if got := r.Name(0); got != "Ana" {
		t.Errorf("Expected Ana, got %q", got)
	}
	if got := r.Name(1); got != "" {
		t.Errorf("Expected empty name for out-of-range ordinal, got %q", got)
	}
	if got := r.Name(-1); got != "" {
		t.Errorf("Expected empty name for negative ordinal, got %q", got)
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	r := Load(filepath.Join(t.TempDir(), "roster.yaml"))

	names := r.Names()
	names[0] = "mutated"

	if r.Name(0) == "mutated" {
		t.Error("Names must return a copy, not the backing slice")
	}
}
