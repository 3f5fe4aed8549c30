package index

import (
	"path/filepath"
	"testing"
)

func TestSaveAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	idx, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	idx.Set("task-1", "event-1")
	idx.Set("task-2", "event-2")
	idx.Remove("task-2")
	if err := idx.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := reopened.Get("task-1"); got != "event-1" {
		t.Errorf("expected event-1, got %q", got)
	}
	if got := reopened.Get("task-2"); got != "" {
		t.Errorf("expected task-2 to be removed, got %q", got)
	}
}

func TestOrphans(t *testing.T) {
	idx, err := Open(filepath.Join(t.TempDir(), "events.json"))
	if err != nil {
		t.Fatal(err)
	}
	idx.Set("a", "ev-a")
	idx.Set("b", "ev-b")
	idx.Set("c", "ev-c")

	orphans := idx.Orphans(map[string]bool{"a": true, "c": true})
	if len(orphans) != 1 || orphans["b"] != "ev-b" {
		t.Errorf("unexpected orphans %v", orphans)
	}
}

func TestSaveSkipsCleanIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "events.json")
	idx, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := idx.Save(); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err != nil {
		t.Fatal(err)
	}
	if len(idx.Mappings) != 0 {
		t.Error("expected empty index")
	}
}
