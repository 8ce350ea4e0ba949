package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDream_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dream   Dream
		wantErr bool
	}{
		{"valid", Dream{Title: "Lisbon wedding", Category: CategoryWedding}, false},
		{"missing title", Dream{Category: CategoryHome}, true},
		{"unknown category", Dream{Title: "x", Category: "yacht"}, true},
		{"negative target", Dream{Title: "x", Category: CategoryTravel, TargetAmountCents: -1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dream.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDream_ProgressPct(t *testing.T) {
	d := Dream{TargetAmountCents: 200_000, SavedAmountCents: 50_000}
	assert.InDelta(t, 25, d.ProgressPct(), 0.001)

	d.SavedAmountCents = 300_000
	assert.InDelta(t, 100, d.ProgressPct(), 0.001, "progress caps at 100")

	d.TargetAmountCents = 0
	assert.Zero(t, d.ProgressPct())
}

func TestDream_RequiredMonthlyCents(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	target := now.AddDate(0, 10, 0)
	d := Dream{
		TargetAmountCents: 100_000,
		SavedAmountCents:  40_000,
		TargetDate:        &target,
	}

	// 60_000 remaining over 10 months.
	assert.Equal(t, int64(6_000), d.RequiredMonthlyCents(now))

	// Already funded.
	d.SavedAmountCents = 100_000
	assert.Zero(t, d.RequiredMonthlyCents(now))

	// No target date.
	d.TargetDate = nil
	assert.Zero(t, d.RequiredMonthlyCents(now))
}

func TestDream_RequiredMonthlyCents_RoundsUp(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	target := now.AddDate(0, 3, 0)
	d := Dream{TargetAmountCents: 100, TargetDate: &target}

	// 100 cents over 3 months rounds up to 34, never undershooting the goal.
	require.Equal(t, int64(34), d.RequiredMonthlyCents(now))
}

func TestValidateJoinCode(t *testing.T) {
	assert.NoError(t, ValidateJoinCode("AB12CD"))
	assert.Error(t, ValidateJoinCode("ab12cd"))
	assert.Error(t, ValidateJoinCode("ABC12"))
	assert.Error(t, ValidateJoinCode("ABC1234"))
	assert.Error(t, ValidateJoinCode(""))
}

func TestSumBudget(t *testing.T) {
	cats := []*BudgetCategory{
		{PlannedCents: 1000, SpentCents: 400},
		{PlannedCents: 500, SpentCents: 700},
	}
	totals := SumBudget(cats)
	assert.Equal(t, int64(1500), totals.PlannedCents)
	assert.Equal(t, int64(1100), totals.SpentCents)
	assert.Equal(t, int64(-200), cats[1].RemainingCents())
}
