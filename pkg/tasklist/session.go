// Package tasklist runs the interactive add/print/edit/delete loop over a
// task store.
package tasklist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/harrisonrobin/tasklist/pkg/model"
	"github.com/harrisonrobin/tasklist/pkg/overdue"
	"github.com/harrisonrobin/tasklist/pkg/prompt"
	"github.com/harrisonrobin/tasklist/pkg/render"
	"github.com/harrisonrobin/tasklist/pkg/store"
)

const (
	msgInvalidAction = "The input action is invalid"
	msgChanged       = "The task is changed"
	msgDeleted       = "The task is deleted"
	msgExiting       = "Tasklist exiting!"
)

// Session owns the store for one run of the loop.
type Session struct {
	Store  *store.Store
	Repo   store.Repository
	Prompt *prompt.Prompter
	Table  *render.Table
	Out    io.Writer
	Now    func() time.Time
}

// Load reads the persisted list, gives legacy records an ID, validates every
// task and refreshes due tags that went stale since the last save.
func Load(ctx context.Context, repo store.Repository, now time.Time) (*store.Store, error) {
	tasks, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
		if err := tasks[i].Validate(); err != nil {
			return nil, fmt.Errorf("stored task %d is invalid: %w", i+1, err)
		}
	}
	swept, err := overdue.Sweep(tasks, now)
	if err != nil {
		return nil, err
	}
	if len(swept) > 0 {
		log.Printf("Refreshed the due tag of %d task(s)", len(swept))
	}
	return store.New(tasks), nil
}

type action func(s *Session, ctx context.Context) error

var (
	errEnd  = errors.New("end of session")
	errSave = errors.New("failed to save tasks")
)

var actions = map[string]action{
	"add":    (*Session).add,
	"print":  (*Session).print,
	"edit":   (*Session).edit,
	"delete": (*Session).delete,
	"end":    (*Session).end,
}

// Run reads commands until "end" or the end of input, then saves the list.
// If the loop stops early on a cancelled context or unreadable input, the
// list is still saved before Run returns the cause.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return s.stop(ctx, err)
		}
		err := s.step(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errEnd):
			return nil
		case err == io.EOF:
			return s.stop(ctx, nil)
		case errors.Is(err, errSave):
			return err
		default:
			return s.stop(ctx, err)
		}
	}
}

// stop saves the list and returns cause, or the save failure.
func (s *Session) stop(ctx context.Context, cause error) error {
	if err := s.end(ctx); !errors.Is(err, errEnd) {
		return err
	}
	return cause
}

// step reads and executes one command.
func (s *Session) step(ctx context.Context) error {
	cmd, err := s.Prompt.Command()
	if err != nil {
		return err
	}
	act, ok := actions[cmd]
	if !ok {
		s.Prompt.Println(msgInvalidAction)
		return nil
	}
	return act(s, ctx)
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Session) add(ctx context.Context) error {
	priority, err := s.Prompt.Priority()
	if err != nil {
		return err
	}
	date, err := s.Prompt.Date()
	if err != nil {
		return err
	}
	clock, err := s.Prompt.Time()
	if err != nil {
		return err
	}
	lines, err := s.Prompt.TaskLines()
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	task, err := model.NewTask(priority, date, clock, lines, s.now())
	if err != nil {
		return err
	}
	s.Store.Add(task)
	return nil
}

func (s *Session) print(ctx context.Context) error {
	return s.Table.Render(s.Out, s.Store.Tasks())
}

func (s *Session) edit(ctx context.Context) error {
	if err := s.print(ctx); err != nil {
		return err
	}
	if s.Store.Len() == 0 {
		return nil
	}
	i, err := s.Prompt.Index(s.Store.Len())
	if err != nil {
		return err
	}
	task, err := s.Store.Get(i)
	if err != nil {
		return err
	}
	field, err := s.Prompt.Field()
	if err != nil {
		return err
	}
	changed, err := editors[field](s, &task)
	if err != nil || !changed {
		return err
	}
	if err := s.Store.Set(i, task); err != nil {
		return err
	}
	s.Prompt.Println(msgChanged)
	return nil
}

func (s *Session) delete(ctx context.Context) error {
	if err := s.print(ctx); err != nil {
		return err
	}
	if s.Store.Len() == 0 {
		return nil
	}
	i, err := s.Prompt.Index(s.Store.Len())
	if err != nil {
		return err
	}
	if err := s.Store.Delete(i); err != nil {
		return err
	}
	s.Prompt.Println(msgDeleted)
	return nil
}

func (s *Session) end(ctx context.Context) error {
	if err := s.Repo.Save(context.WithoutCancel(ctx), s.Store.Tasks()); err != nil {
		return fmt.Errorf("%w: %w", errSave, err)
	}
	s.Prompt.Println(msgExiting)
	return errEnd
}
