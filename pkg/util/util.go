package util

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/harrisonrobin/tasklist/pkg/colors"
	"github.com/harrisonrobin/tasklist/pkg/model"
)

// TaskIDProperty is the private extended property linking an event to its
// task.
const TaskIDProperty = "tasklist_id"

// EventDuration is the length given to mirrored events; tasks only carry a
// start time.
const EventDuration = 30 * time.Minute

// EventNeedsUpdate returns a patch holding the fields of targetEvent that
// differ from existingEvent, or nil if they match.
func EventNeedsUpdate(existingEvent *calendar.Event, targetEvent *calendar.Event) (*calendar.Event, error) {
	patch := &calendar.Event{}
	needsUpdate := false

	if existingEvent.Summary != targetEvent.Summary {
		patch.Summary = targetEvent.Summary
		needsUpdate = true
	}
	if existingEvent.Description != targetEvent.Description {
		patch.Description = targetEvent.Description
		needsUpdate = true
	}
	if existingEvent.ColorId != targetEvent.ColorId {
		patch.ColorId = targetEvent.ColorId
		needsUpdate = true
	}

	sameStart, err := sameInstant(existingEvent.Start, targetEvent.Start)
	if err != nil {
		return nil, err
	}
	sameEnd, err := sameInstant(existingEvent.End, targetEvent.End)
	if err != nil {
		return nil, err
	}
	if !sameStart || !sameEnd {
		patch.Start = targetEvent.Start
		patch.End = targetEvent.End
		needsUpdate = true
	}

	if needsUpdate {
		return patch, nil
	}
	return nil, nil
}

func sameInstant(a, b *calendar.EventDateTime) (bool, error) {
	if a == nil || b == nil {
		return a == b, nil
	}
	at, err := time.Parse(time.RFC3339, a.DateTime)
	if err != nil {
		return false, err
	}
	bt, err := time.Parse(time.RFC3339, b.DateTime)
	if err != nil {
		return false, err
	}
	return at.Equal(bt), nil
}

// ConvertTaskToCalendarEvent builds the event mirroring task. The task's
// date and time are read in loc.
func ConvertTaskToCalendarEvent(task model.Task, loc *time.Location) (*calendar.Event, error) {
	if task.ID == "" {
		return nil, fmt.Errorf("could not convert task without an ID")
	}
	if len(task.Lines) == 0 {
		return nil, model.ErrBlankTask
	}
	start, err := time.ParseInLocation(model.DateLayout+" "+model.TimeLayout, task.Date+" "+task.Time, loc)
	if err != nil {
		return nil, fmt.Errorf("task %s has an invalid date or time: %w", task.ID, err)
	}
	end := start.Add(EventDuration)

	summary := task.Lines[0]
	if task.DueTag == model.Overdue {
		summary = "! " + summary
	}

	var desc strings.Builder
	for _, line := range task.Lines {
		desc.WriteString(line)
		desc.WriteString("\n")
	}
	desc.WriteString("\n")
	fmt.Fprintf(&desc, "Priority: %s\n", task.Priority)
	fmt.Fprintf(&desc, "Due: %s\n", task.DueTag)
	fmt.Fprintf(&desc, "ID: %s\n", task.ID)

	return &calendar.Event{
		Summary:     summary,
		Description: desc.String(),
		ColorId:     colors.CalendarColorID(task.Priority),
		Start: &calendar.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: end.UTC().Format(time.RFC3339),
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				TaskIDProperty: task.ID,
			},
		},
	}, nil
}
