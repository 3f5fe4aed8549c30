// Package overdue keeps the stored due tags of a task list in step with the
// calendar.
package overdue

import (
	"fmt"
	"time"

	"github.com/harrisonrobin/tasklist/pkg/model"
)

// Sweep recomputes the due tag of every task against now and returns the
// indexes whose stored tag was stale.
func Sweep(tasks []model.Task, now time.Time) ([]int, error) {
	var swept []int
	for i := range tasks {
		changed, err := tasks[i].RefreshDueTag(now)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		if changed {
			swept = append(swept, i)
		}
	}
	return swept, nil
}

// Filter returns the tasks currently tagged with tag, in list order.
func Filter(tasks []model.Task, tag model.DueTag) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.DueTag == tag {
			out = append(out, t)
		}
	}
	return out
}
