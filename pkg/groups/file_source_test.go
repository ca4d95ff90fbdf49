package groups

import (
	"testing"

	"github.com/spf13/afero"
)

func TestFileSource_LoadGroups(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := `{"42": [3, 7], "43": [3]}`
	if err := afero.WriteFile(fs, "/data/groups.json", []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write membership file: %v", err)
	}

	source := NewFileSource(fs, "/data/groups.json")

	groups, err := source.LoadGroups(42)
	if err != nil {
		t.Fatalf("LoadGroups failed: %v", err)
	}
	if len(groups) != 2 || groups[0] != 3 || groups[1] != 7 {
		t.Errorf("LoadGroups(42) = %v, want [3 7]", groups)
	}

	// Unknown user yields an empty set, not an error
	groups, err = source.LoadGroups(99)
	if err != nil {
		t.Fatalf("LoadGroups(99) failed: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("LoadGroups(99) = %v, want empty", groups)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	source := NewFileSource(afero.NewMemMapFs(), "/data/groups.json")

	if _, err := source.LoadGroups(42); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestFileSource_InvalidJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/data/groups.json", []byte("{oops"), 0644); err != nil {
		t.Fatalf("Failed to write membership file: %v", err)
	}

	source := NewFileSource(fs, "/data/groups.json")
	if _, err := source.LoadGroups(42); err == nil {
		t.Error("Expected error for invalid JSON, got nil")
	}
}

func TestFileSource_InvalidUserID(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/data/groups.json", []byte(`{"abc": [1]}`), 0644); err != nil {
		t.Fatalf("Failed to write membership file: %v", err)
	}

	source := NewFileSource(fs, "/data/groups.json")
	if _, err := source.LoadGroups(42); err == nil {
		t.Error("Expected error for non-numeric user id, got nil")
	}
}
