package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/harrisonrobin/tasklist/pkg/model"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "a", Date: "2023-06-14", Time: "09:00", Priority: model.Critical, DueTag: model.Overdue, Lines: []string{"Pay rent"}},
		{ID: "b", Date: "2023-06-15", Time: "12:30", Priority: model.Normal, DueTag: model.Today, Lines: []string{"Buy milk", "and bread"}},
		{ID: "c", Date: "2023-07-01", Time: "18:45", Priority: model.Low, DueTag: model.InTime, Lines: []string{"Book flights"}},
	}
}

func TestStoreDeleteKeepsOrder(t *testing.T) {
	s := New(sampleTasks())
	if err := s.Delete(1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got := s.Tasks()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected tasks after delete: %+v", got)
	}
	if err := s.Delete(2); err == nil {
		t.Error("expected out of range error")
	}
}

func TestStoreSetAndGet(t *testing.T) {
	s := New(sampleTasks())
	task, err := s.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	task.Lines[0] = "changed"
	if orig, _ := s.Get(0); orig.Lines[0] != "Pay rent" {
		t.Fatal("Get must return a copy")
	}
	if err := s.Set(0, task); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Get(0); got.Lines[0] != "changed" {
		t.Errorf("expected updated line, got %q", got.Lines[0])
	}
	if _, err := s.Get(-1); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, kind := range []string{KindJSON, KindSQLite} {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "tasks."+kind)

			repo, err := Open(kind, path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if err := repo.Save(ctx, sampleTasks()); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			repo.Close()

			repo, err = Open(kind, path)
			if err != nil {
				t.Fatalf("reopen failed: %v", err)
			}
			defer repo.Close()
			got, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !reflect.DeepEqual(got, sampleTasks()) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, sampleTasks())
			}

			// Saving a shorter list replaces the old one entirely.
			if err := repo.Save(ctx, sampleTasks()[:1]); err != nil {
				t.Fatal(err)
			}
			got, err = repo.Load(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0].ID != "a" {
				t.Errorf("expected only task a, got %+v", got)
			}
		})
	}
}

func TestJSONFileMissingIsEmpty(t *testing.T) {
	repo := NewJSONFile(filepath.Join(t.TempDir(), "absent.json"))
	tasks, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %d tasks", len(tasks))
	}
}

func TestJSONFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewJSONFile(path).Load(context.Background()); err == nil {
		t.Error("expected decode error for corrupt file")
	}
}

func TestJSONFileReadsLegacyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.json")
	legacy := `[{"date":"2023-06-15","time":"12:00","priority":"H","dueTag":"T","taskLines":["Old task"]}]`
	if err := os.WriteFile(path, []byte(legacy), 0600); err != nil {
		t.Fatal(err)
	}
	tasks, err := NewJSONFile(path).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].ID != "" || tasks[0].Priority != model.High || tasks[0].Lines[0] != "Old task" {
		t.Errorf("unexpected legacy decode: %+v", tasks)
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open("csv", "x"); err == nil {
		t.Error("expected error for unknown storage")
	}
}
