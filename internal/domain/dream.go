package domain

import (
	"fmt"
	"time"
)

// Dream is a shared life goal the couple is planning toward: a wedding,
// a home purchase, a trip, a savings target. Milestones, tasks and budget
// categories all hang off a dream.
type Dream struct {
	ID                  string
	OwnerID             string
	PartnerID           string
	Title               string
	Category            DreamCategory
	TargetDate          *time.Time
	TargetAmountCents   int64
	SavedAmountCents    int64
	MonthlyContribCents int64
	Status              DreamStatus
	ArchivedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks the fields a dream must carry before it can be persisted.
func (d *Dream) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("dream title is required")
	}
	if !ValidDreamCategories[string(d.Category)] {
		return fmt.Errorf("unknown dream category %q", d.Category)
	}
	if d.TargetAmountCents < 0 {
		return fmt.Errorf("target amount must not be negative")
	}
	return nil
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (d *Dream) DisplayID() string {
	if len(d.ID) >= 8 {
		return d.ID[:8]
	}
	return d.ID
}

// ProgressPct returns how much of the target amount has been saved, 0-100.
// A dream with no target amount reports 0.
func (d *Dream) ProgressPct() float64 {
	if d.TargetAmountCents <= 0 {
		return 0
	}
	pct := float64(d.SavedAmountCents) / float64(d.TargetAmountCents) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// MonthsRemaining returns whole months until the target date, or -1 when
// no target date is set. Past dates report 0.
func (d *Dream) MonthsRemaining(now time.Time) int {
	if d.TargetDate == nil {
		return -1
	}
	if !d.TargetDate.After(now) {
		return 0
	}
	months := 0
	t := now
	for t.Before(*d.TargetDate) {
		t = t.AddDate(0, 1, 0)
		months++
	}
	return months
}

// RequiredMonthlyCents returns the monthly contribution needed to reach the
// target amount by the target date, or 0 when it cannot be computed.
func (d *Dream) RequiredMonthlyCents(now time.Time) int64 {
	months := d.MonthsRemaining(now)
	if months <= 0 {
		return 0
	}
	remaining := d.TargetAmountCents - d.SavedAmountCents
	if remaining <= 0 {
		return 0
	}
	return (remaining + int64(months) - 1) / int64(months)
}
