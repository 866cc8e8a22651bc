// Package ordering maintains the per-course task numbering: dense but not
// necessarily contiguous, unique whenever non-null. The overlay math here is
// pure; the two-phase null-then-assign write lives in the store.
package ordering

import (
	"sort"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

// ReorderItem maps one task to its requested number.
type ReorderItem struct {
	TaskID int64 `json:"task_id" validate:"required"`
	Number int   `json:"number"`
}

// ValidateRequest rejects a reorder request that is malformed on its own:
// duplicate task ids or duplicate target numbers. Runs before any storage
// access.
func ValidateRequest(items []ReorderItem) error {
	ids := make(map[int64]struct{}, len(items))
	numbers := make(map[int]struct{}, len(items))
	for _, item := range items {
		if _, ok := ids[item.TaskID]; ok {
			return apperr.Conflict("reorder request", "task_id", item.TaskID)
		}
		if _, ok := numbers[item.Number]; ok {
			return apperr.Conflict("reorder request", "number", item.Number)
		}
		ids[item.TaskID] = struct{}{}
		numbers[item.Number] = struct{}{}
	}
	return nil
}

// EnsureNoConflicts overlays the pending changes onto the course's current
// numbering and fails with Conflict if the effective result assigns the same
// non-null number twice. changed entries replace course tasks by id; a
// changed task unknown to the course (a pending create) simply joins the
// overlay.
func EnsureNoConflicts(courseTasks []models.Task, changed ...models.Task) error {
	effective := make(map[int64]*int, len(courseTasks)+len(changed))
	for _, t := range courseTasks {
		effective[t.ID] = t.TaskNumber
	}
	for _, t := range changed {
		effective[t.ID] = t.TaskNumber
	}

	seen := make(map[int]int64, len(effective))
	for id, number := range effective {
		if number == nil {
			continue
		}
		if _, ok := seen[*number]; ok {
			return apperr.Conflict("task", "task_number", *number)
		}
		seen[*number] = id
	}
	return nil
}

// SortTasks orders a task list for display: numbered tasks ascending, then
// unnumbered ones by id.
func SortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].TaskNumber, tasks[j].TaskNumber
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		case b != nil:
			return false
		default:
			return tasks[i].ID < tasks[j].ID
		}
	})
}
