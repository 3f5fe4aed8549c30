package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority is the severity a task carries, independent of its due tag.
// The value is the single-letter code used at the prompt and on disk.
type Priority string

const (
	Critical Priority = "C"
	High     Priority = "H"
	Normal   Priority = "N"
	Low      Priority = "L"
)

// Priorities lists the accepted priorities in prompt order.
var Priorities = []Priority{Critical, High, Normal, Low}

func (p Priority) String() string {
	switch p {
	case Critical:
		return "Critical"
	case High:
		return "High"
	case Normal:
		return "Normal"
	case Low:
		return "Low"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the four known priorities.
func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePriority matches a single-letter code case-insensitively.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

var ErrBlankTask = errors.New("task has no text")

// Task is a single to-do entry.
type Task struct {
	ID       string
	Date     string // yyyy-mm-dd
	Time     string // hh:mm
	Priority Priority
	DueTag   DueTag
	Lines    []string
}

// NewTask builds a task with a fresh ID. date and clock must already be
// normalized; the due tag is computed against now.
func NewTask(priority Priority, date, clock string, lines []string, now time.Time) (Task, error) {
	if len(lines) == 0 {
		return Task{}, ErrBlankTask
	}
	t := Task{
		ID:       uuid.NewString(),
		Time:     clock,
		Priority: priority,
		Lines:    append([]string(nil), lines...),
	}
	if err := t.SetDate(date, now); err != nil {
		return Task{}, err
	}
	return t, t.Validate()
}

// SetDate changes the date and recomputes the due tag in the same step so
// the two never disagree.
func (t *Task) SetDate(date string, now time.Time) error {
	tag, err := Classify(date, now)
	if err != nil {
		return err
	}
	t.Date = date
	t.DueTag = tag
	return nil
}

// RefreshDueTag recomputes the due tag from the current date and reports
// whether it changed.
func (t *Task) RefreshDueTag(now time.Time) (bool, error) {
	tag, err := Classify(t.Date, now)
	if err != nil {
		return false, err
	}
	changed := tag != t.DueTag
	t.DueTag = tag
	return changed, nil
}

// Validate checks the invariants every stored task must satisfy.
func (t Task) Validate() error {
	if d, err := NormalizeDate(t.Date); err != nil {
		return err
	} else if d != t.Date {
		return fmt.Errorf("date %q is not in yyyy-mm-dd form", t.Date)
	}
	if c, err := NormalizeTime(t.Time); err != nil {
		return err
	} else if c != t.Time {
		return fmt.Errorf("time %q is not in hh:mm form", t.Time)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("unknown priority %q", string(t.Priority))
	}
	if !t.DueTag.Valid() {
		return fmt.Errorf("unknown due tag %q", string(t.DueTag))
	}
	if len(t.Lines) == 0 {
		return ErrBlankTask
	}
	for i, line := range t.Lines {
		if strings.TrimSpace(line) == "" {
			return fmt.Errorf("line %d is blank", i+1)
		}
	}
	return nil
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	t.Lines = append([]string(nil), t.Lines...)
	return t
}
