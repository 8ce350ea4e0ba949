package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/togetherforward/forward/internal/domain"
)

func TestFormatDreamList(t *testing.T) {
	target := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	dreams := []*domain.Dream{
		{
			ID:                "aaaaaaaa-1111-2222-3333-444444444444",
			Title:             "Wedding in Lisbon",
			Category:          domain.CategoryWedding,
			TargetDate:        &target,
			TargetAmountCents: 2500000,
			SavedAmountCents:  1250000,
			Status:            domain.DreamActive,
		},
		{
			ID:       "bbbbbbbb-1111-2222-3333-444444444444",
			Title:    "Emergency fund",
			Category: domain.CategoryFinance,
			Status:   domain.DreamPaused,
		},
	}

	out := FormatDreamList(dreams)

	assert.Contains(t, out, "Wedding in Lisbon")
	assert.Contains(t, out, "aaaaaaaa")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "no amount")
	assert.Contains(t, out, "Paused")
}

func TestFormatDreamDetail(t *testing.T) {
	target := time.Now().AddDate(1, 0, 0)
	overdue := time.Now().AddDate(0, 0, -3)

	data := DreamDetailData{
		Dream: &domain.Dream{
			ID:                "cccccccc-1111-2222-3333-444444444444",
			Title:             "Buy a house",
			Category:          domain.CategoryHome,
			TargetDate:        &target,
			TargetAmountCents: 8000000,
			SavedAmountCents:  2000000,
			Status:            domain.DreamActive,
		},
		Milestones: []*domain.Milestone{
			{Seq: 1, Title: "Mortgage pre-approval", Status: domain.MilestoneDone},
			{Seq: 2, Title: "Find the neighborhood", Status: domain.MilestoneUpcoming, DueDate: &overdue},
		},
		Tasks: []*domain.Task{
			{Title: "Meet the broker", Status: domain.TaskDone, Assignee: domain.AssigneeMe},
			{Title: "List must-haves", Status: domain.TaskTodo, Assignee: domain.AssigneeBoth},
		},
		Budget: []*domain.BudgetCategory{
			{Name: "Down payment", PlannedCents: 6000000, SpentCents: 0},
			{Name: "Closing costs", PlannedCents: 2000000, SpentCents: 500000},
		},
		Currency: "EUR",
	}

	out := FormatDreamDetail(data)

	assert.Contains(t, out, "BUY A HOUSE")
	assert.Contains(t, out, "EUR 20,000.00")
	assert.Contains(t, out, "per month")
	assert.Contains(t, out, "Mortgage pre-approval")
	assert.Contains(t, out, "overdue")
	assert.Contains(t, out, "Meet the broker")
	assert.Contains(t, out, "Down payment")
	assert.Contains(t, out, "80,000.00 planned")
}

func TestFormatBudget_Totals(t *testing.T) {
	cats := []*domain.BudgetCategory{
		{Name: "Venue", PlannedCents: 1000000, SpentCents: 1200000},
		{Name: "Catering", PlannedCents: 500000, SpentCents: 100000},
	}

	out := FormatBudget(cats, "USD")

	assert.Contains(t, out, "Venue")
	assert.Contains(t, out, "USD 15,000.00 planned")
	assert.Contains(t, out, "USD 13,000.00 spent")
	// Overspent remaining shows negative.
	assert.Contains(t, out, "-2,000.00")
}
