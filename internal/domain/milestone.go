package domain

import "time"

// Milestone is a tracked step toward a dream, ordered by Seq.
type Milestone struct {
	ID                string
	DreamID           string
	Title             string
	Seq               int
	DueDate           *time.Time
	TargetAmountCents int64
	Status            MilestoneStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Overdue reports whether the milestone has a due date in the past and is
// not yet done.
func (m *Milestone) Overdue(now time.Time) bool {
	return m.Status != MilestoneDone && m.DueDate != nil && m.DueDate.Before(now)
}
