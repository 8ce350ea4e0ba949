package domain

import "time"

// BudgetCategory is one slice of a dream's budget, ordered by Seq.
type BudgetCategory struct {
	ID           string
	DreamID      string
	Name         string
	PlannedCents int64
	SpentCents   int64
	Seq          int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RemainingCents returns planned minus spent. Overspent categories go negative.
func (c *BudgetCategory) RemainingCents() int64 {
	return c.PlannedCents - c.SpentCents
}

// BudgetTotals aggregates a dream's budget categories.
type BudgetTotals struct {
	PlannedCents int64
	SpentCents   int64
}

// SumBudget totals planned and spent cents across categories.
func SumBudget(categories []*BudgetCategory) BudgetTotals {
	var t BudgetTotals
	for _, c := range categories {
		t.PlannedCents += c.PlannedCents
		t.SpentCents += c.SpentCents
	}
	return t
}
