package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// NormalizeDate accepts y-m-d with a four digit year and one or two digit
// month and day, zero-pads it to yyyy-mm-dd and checks that the day exists.
func NormalizeDate(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || len(parts[0]) != 4 || !allDigits(parts[0]) {
		return "", fmt.Errorf("invalid date %q", s)
	}
	month, err := padField(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	day, err := padField(parts[2])
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	iso := parts[0] + "-" + month + "-" + day
	if _, err := time.Parse(DateLayout, iso); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return iso, nil
}

// NormalizeTime accepts h:m with one or two digits each, zero-pads it to
// hh:mm and checks that it lies within 00:00..23:59.
func NormalizeTime(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q", s)
	}
	hour, err := padField(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid time %q: %w", s, err)
	}
	minute, err := padField(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid time %q: %w", s, err)
	}
	iso := hour + ":" + minute
	if _, err := time.Parse(TimeLayout, iso); err != nil {
		return "", fmt.Errorf("invalid time %q: %w", s, err)
	}
	return iso, nil
}

// padField left-pads a one or two digit number with a zero.
func padField(s string) (string, error) {
	if len(s) == 0 || len(s) > 2 || !allDigits(s) {
		return "", fmt.Errorf("expected 1-2 digits, got %q", s)
	}
	if len(s) == 1 {
		return "0" + s, nil
	}
	return s, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
