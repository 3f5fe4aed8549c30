package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrisonrobin/tasklist/pkg/model"
)

// record is the on-disk shape of a task.
type record struct {
	ID        string   `json:"id,omitempty"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Priority  string   `json:"priority"`
	DueTag    string   `json:"dueTag"`
	TaskLines []string `json:"taskLines"`
}

// JSONFile stores the list as one JSON array.
type JSONFile struct {
	Path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{Path: path}
}

// Load reads the list. A missing file is an empty list; a file that exists
// but cannot be decoded is an error.
func (j *JSONFile) Load(ctx context.Context) ([]model.Task, error) {
	f, err := os.Open(j.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var records []record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", j.Path, err)
	}
	tasks := make([]model.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, model.Task{
			ID:       r.ID,
			Date:     r.Date,
			Time:     r.Time,
			Priority: model.Priority(r.Priority),
			DueTag:   model.DueTag(r.DueTag),
			Lines:    r.TaskLines,
		})
	}
	return tasks, nil
}

// Save writes the list to a temporary file next to Path and renames it into
// place.
func (j *JSONFile) Save(ctx context.Context, tasks []model.Task) error {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, record{
			ID:        t.ID,
			Date:      t.Date,
			Time:      t.Time,
			Priority:  string(t.Priority),
			DueTag:    string(t.DueTag),
			TaskLines: t.Lines,
		})
	}

	dir := filepath.Dir(j.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(j.Path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, j.Path)
}

func (j *JSONFile) Close() error { return nil }
