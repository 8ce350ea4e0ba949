package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/togetherforward/forward/internal/domain"
)

func writeTestTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSavingWindowOverlaps(t *testing.T) {
	now := time.Now().UTC()
	at := func(months int) time.Time { return now.AddDate(0, months, 0) }
	end := func(months int) *time.Time {
		t := at(months)
		return &t
	}

	tests := []struct {
		name string
		a, b savingWindow
		want bool
	}{
		{"nested", savingWindow{at(0), end(12)}, savingWindow{at(2), end(4)}, true},
		{"partial", savingWindow{at(0), end(6)}, savingWindow{at(3), end(9)}, true},
		{"disjoint", savingWindow{at(0), end(3)}, savingWindow{at(6), end(9)}, false},
		{"touching ends", savingWindow{at(0), end(3)}, savingWindow{at(3), end(6)}, false},
		{"open-ended overlaps all", savingWindow{at(0), nil}, savingWindow{at(48), end(60)}, true},
		{"both open", savingWindow{at(0), nil}, savingWindow{at(1), nil}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.overlaps(tt.a), "overlap is symmetric")
		})
	}
}

func TestFundsNext(t *testing.T) {
	now := time.Now().UTC()
	dream := func(monthsOut int) *domain.Dream {
		target := now.AddDate(0, monthsOut, 0)
		return &domain.Dream{TargetDate: &target}
	}

	assert.True(t, fundsNext(dream(3), dream(12)))
	assert.False(t, fundsNext(dream(12), dream(3)))
	assert.False(t, fundsNext(dream(3), dream(3)), "same month cannot roll over")
	assert.False(t, fundsNext(&domain.Dream{}, dream(3)), "open-ended dreams never finish first")
}
