package model

import (
	"fmt"
	"strings"
)

// Field names one editable part of a task.
type Field int

const (
	FieldPriority Field = iota
	FieldDate
	FieldTime
	FieldTask
)

var fieldNames = map[Field]string{
	FieldPriority: "priority",
	FieldDate:     "date",
	FieldTime:     "time",
	FieldTask:     "task",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField matches a field name case-insensitively.
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range fieldNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", s)
}
