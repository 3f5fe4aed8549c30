package util

import (
	"strings"
	"testing"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/harrisonrobin/tasklist/pkg/model"
)

func sampleTask() model.Task {
	return model.Task{
		ID:       "12345678-1234-1234-1234-123456789012",
		Date:     "2023-01-01",
		Time:     "12:00",
		Priority: model.Critical,
		DueTag:   model.Overdue,
		Lines:    []string{"Buy milk", "Don't forget almond milk"},
	}
}

func TestConvertTaskToCalendarEvent(t *testing.T) {
	event, err := ConvertTaskToCalendarEvent(sampleTask(), time.UTC)
	if err != nil {
		t.Fatalf("ConvertTaskToCalendarEvent failed: %v", err)
	}

	if event.ExtendedProperties == nil || event.ExtendedProperties.Private == nil {
		t.Fatal("ExtendedProperties or Private map is nil")
	}
	if val := event.ExtendedProperties.Private[TaskIDProperty]; val != sampleTask().ID {
		t.Errorf("Expected %s %s, got %v", TaskIDProperty, sampleTask().ID, val)
	}
	if event.Summary != "! Buy milk" {
		t.Errorf("Expected overdue summary, got %q", event.Summary)
	}
	if event.ColorId != "11" {
		t.Errorf("Expected color 11 for a critical task, got %s", event.ColorId)
	}
	if event.Start.DateTime != "2023-01-01T12:00:00Z" || event.End.DateTime != "2023-01-01T12:30:00Z" {
		t.Errorf("Unexpected times %s - %s", event.Start.DateTime, event.End.DateTime)
	}
	for _, want := range []string{"Don't forget almond milk", "Priority: Critical", "Due: Overdue"} {
		if !strings.Contains(event.Description, want) {
			t.Errorf("Expected description to contain %q, got: %s", want, event.Description)
		}
	}
}

func TestConvertUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	task := sampleTask()
	task.DueTag = model.InTime
	event, err := ConvertTaskToCalendarEvent(task, loc)
	if err != nil {
		t.Fatal(err)
	}
	if event.Start.DateTime != "2023-01-01T10:00:00Z" {
		t.Errorf("Expected start converted to UTC, got %s", event.Start.DateTime)
	}
	if event.Summary != "Buy milk" {
		t.Errorf("Expected no overdue prefix, got %q", event.Summary)
	}
}

func TestConvertRejectsTaskWithoutID(t *testing.T) {
	task := sampleTask()
	task.ID = ""
	if _, err := ConvertTaskToCalendarEvent(task, time.UTC); err == nil {
		t.Error("Expected error for a task without ID")
	}
}

func TestEventNeedsUpdate(t *testing.T) {
	target, err := ConvertTaskToCalendarEvent(sampleTask(), time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	same := *target
	patch, err := EventNeedsUpdate(&same, target)
	if err != nil {
		t.Fatal(err)
	}
	if patch != nil {
		t.Errorf("Expected no patch, got %+v", patch)
	}

	moved := *target
	moved.Start = &calendar.EventDateTime{DateTime: "2023-01-02T12:00:00Z"}
	moved.Summary = "Buy milk"
	patch, err = EventNeedsUpdate(&moved, target)
	if err != nil {
		t.Fatal(err)
	}
	if patch == nil || patch.Start == nil || patch.Summary != "! Buy milk" {
		t.Errorf("Expected patch with start and summary, got %+v", patch)
	}
	if patch.Description != "" || patch.ColorId != "" {
		t.Errorf("Expected unchanged fields to be left out, got %+v", patch)
	}
}
