package domain

import "time"

// Task is a unit of work toward a dream, optionally attached to a milestone
// and assigned to one or both partners.
type Task struct {
	ID          string
	DreamID     string
	MilestoneID string
	Title       string
	Assignee    TaskAssignee
	DueDate     *time.Time
	Status      TaskStatus
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Overdue reports whether the task has a due date in the past and is not done.
func (t *Task) Overdue(now time.Time) bool {
	return t.Status != TaskDone && t.DueDate != nil && t.DueDate.Before(now)
}
