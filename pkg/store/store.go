// Package store holds the ordered task list in memory and the repositories
// that load and persist it as a whole.
package store

import (
	"context"
	"fmt"

	"github.com/harrisonrobin/tasklist/pkg/model"
)

// Repository persists the complete task list. There are no incremental
// writes: Save always replaces what Load would return.
type Repository interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
	Close() error
}

// Store is the in-memory, ordered task list of one session. Order defines
// the 1-based numbering shown to the user.
type Store struct {
	tasks []model.Task
}

func New(tasks []model.Task) *Store {
	s := &Store{}
	for _, t := range tasks {
		s.tasks = append(s.tasks, t.Clone())
	}
	return s
}

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) Add(t model.Task) {
	s.tasks = append(s.tasks, t.Clone())
}

// Get returns a copy of the task at zero-based index i.
func (s *Store) Get(i int) (model.Task, error) {
	if err := s.check(i); err != nil {
		return model.Task{}, err
	}
	return s.tasks[i].Clone(), nil
}

// Set replaces the task at zero-based index i.
func (s *Store) Set(i int, t model.Task) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.tasks[i] = t.Clone()
	return nil
}

// Delete removes the task at zero-based index i, keeping the relative order
// of the others.
func (s *Store) Delete(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// Tasks returns a snapshot of the list.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.tasks) {
		return fmt.Errorf("task index %d out of range [0,%d)", i, len(s.tasks))
	}
	return nil
}

// CheckKind reports an error for storage kinds Open does not know.
func CheckKind(kind string) error {
	switch kind {
	case "", KindJSON, KindSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage %q (want %s or %s)", kind, KindJSON, KindSQLite)
	}
}

// Open returns the repository for the given storage kind.
func Open(kind, path string) (Repository, error) {
	if err := CheckKind(kind); err != nil {
		return nil, err
	}
	if kind == KindSQLite {
		return NewSQLite(path)
	}
	return NewJSONFile(path), nil
}

const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
)
