package model

import (
	"fmt"
	"time"
)

// DueTag classifies a task date against the current day.
type DueTag string

const (
	InTime  DueTag = "I"
	Today   DueTag = "T"
	Overdue DueTag = "O"
)

func (d DueTag) String() string {
	switch d {
	case InTime:
		return "In-time"
	case Today:
		return "Today"
	case Overdue:
		return "Overdue"
	default:
		return string(d)
	}
}

func (d DueTag) Valid() bool {
	return d == InTime || d == Today || d == Overdue
}

// DaysUntil returns the whole days from the UTC calendar day of now to date.
func DaysUntil(date string, now time.Time) (int, error) {
	due, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int((due.Unix() - today.Unix()) / 86400), nil
}

// Classify maps a date to In-time, Today or Overdue relative to now.
func Classify(date string, now time.Time) (DueTag, error) {
	days, err := DaysUntil(date, now)
	if err != nil {
		return "", err
	}
	switch {
	case days > 0:
		return InTime, nil
	case days == 0:
		return Today, nil
	default:
		return Overdue, nil
	}
}
