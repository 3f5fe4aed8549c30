package google

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/harrisonrobin/tasklist/pkg/index"
	"github.com/harrisonrobin/tasklist/pkg/model"
	"github.com/harrisonrobin/tasklist/pkg/util"
)

// Outcome describes what SyncTask did to the calendar.
type Outcome int

const (
	Unchanged Outcome = iota
	Created
	Updated
)

// MirrorResult counts the changes made by Mirror.
type MirrorResult struct {
	Created   int
	Updated   int
	Unchanged int
	Deleted   int
	Failed    int
}

// CalendarClient is a Google Calendar API client.
type CalendarClient struct {
	srv        *calendar.Service
	calendarID string
	index      *index.EventIndex
	loc        *time.Location
}

// NewCalendarClient creates a client for calendarID. Task dates are read in
// loc; idx may be nil.
func NewCalendarClient(srv *calendar.Service, calendarID string, idx *index.EventIndex, loc *time.Location) *CalendarClient {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarClient{srv: srv, calendarID: calendarID, index: idx, loc: loc}
}

// SyncTask creates the event for task or patches the existing one.
func (c *CalendarClient) SyncTask(ctx context.Context, task model.Task) (*calendar.Event, Outcome, error) {
	event, err := util.ConvertTaskToCalendarEvent(task, c.loc)
	if err != nil {
		return nil, Unchanged, err
	}

	var existingEvent *calendar.Event
	if c.index != nil {
		if eventID := c.index.Get(task.ID); eventID != "" {
			existingEvent, err = c.srv.Events.Get(c.calendarID, eventID).Context(ctx).Do()
			if err != nil || existingEvent.Status == "cancelled" {
				existingEvent = nil
			}
		}
	}
	if existingEvent == nil {
		existingEvent, err = c.GetEventByTaskID(ctx, task.ID)
		if err != nil {
			return nil, Unchanged, fmt.Errorf("error searching for event: %w", err)
		}
	}

	if existingEvent != nil {
		patch, err := util.EventNeedsUpdate(existingEvent, event)
		if err != nil {
			return nil, Unchanged, fmt.Errorf("could not compare task with its calendar event: %w", err)
		}
		c.remember(task.ID, existingEvent.Id)
		if patch == nil {
			return existingEvent, Unchanged, nil
		}
		updated, err := c.PatchEvent(ctx, existingEvent.Id, patch)
		if err != nil {
			return nil, Unchanged, err
		}
		return updated, Updated, nil
	}

	created, err := c.srv.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, Unchanged, err
	}
	c.remember(task.ID, created.Id)
	return created, Created, nil
}

func (c *CalendarClient) remember(taskID, eventID string) {
	if c.index != nil {
		c.index.Set(taskID, eventID)
	}
}

// Mirror syncs every task and deletes the events of indexed tasks that are
// no longer in the list. Per-task failures are logged and counted.
func (c *CalendarClient) Mirror(ctx context.Context, tasks []model.Task) (MirrorResult, error) {
	var res MirrorResult
	keep := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		keep[task.ID] = true
		if err := ctx.Err(); err != nil {
			return res, err
		}
		_, outcome, err := c.SyncTask(ctx, task)
		if err != nil {
			log.Printf("Error syncing task %s: %v", task.ID, err)
			res.Failed++
			continue
		}
		switch outcome {
		case Created:
			res.Created++
		case Updated:
			res.Updated++
		default:
			res.Unchanged++
		}
	}

	if c.index == nil {
		return res, nil
	}
	for taskID, eventID := range c.index.Orphans(keep) {
		if err := c.DeleteEvent(ctx, eventID); err != nil {
			log.Printf("Error deleting event %s of removed task %s: %v", eventID, taskID, err)
			res.Failed++
			continue
		}
		c.index.Remove(taskID)
		res.Deleted++
	}
	return res, nil
}

// PatchEvent performs a partial update on an event.
func (c *CalendarClient) PatchEvent(ctx context.Context, eventID string, patch *calendar.Event) (*calendar.Event, error) {
	return c.srv.Events.Patch(c.calendarID, eventID, patch).Context(ctx).Do()
}

// DeleteEvent deletes an event from the calendar.
func (c *CalendarClient) DeleteEvent(ctx context.Context, eventID string) error {
	return c.srv.Events.Delete(c.calendarID, eventID).Context(ctx).Do()
}

// GetEventByTaskID finds the event carrying the task ID in its private
// extended properties, or nil if there is none.
func (c *CalendarClient) GetEventByTaskID(ctx context.Context, taskID string) (*calendar.Event, error) {
	events, err := c.srv.Events.List(c.calendarID).
		PrivateExtendedProperty(fmt.Sprintf("%s=%s", util.TaskIDProperty, taskID)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(events.Items) > 0 {
		return events.Items[0], nil
	}
	return nil, nil
}
