package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocateByPercent_SumsExactly(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		weights []float64
	}{
		{"thirds", 100, []float64{1, 1, 1}},
		{"wedding split", 2500000, []float64{40, 20, 15, 10, 10, 5}},
		{"uneven", 999, []float64{33.3, 33.3, 33.4}},
		{"single", 12345, []float64{100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := AllocateByPercent(tt.total, tt.weights)
			var sum int64
			for _, p := range parts {
				sum += p
			}
			assert.Equal(t, tt.total, sum)
		})
	}
}

func TestAllocateByPercent_ProportionsRespected(t *testing.T) {
	parts := AllocateByPercent(1000, []float64{50, 30, 20})
	assert.Equal(t, []int64{500, 300, 200}, parts)
}

func TestAllocateByPercent_LargestRemainderWins(t *testing.T) {
	// 100/3 = 33.33..; the extra cent goes to the largest remainder,
	// first index on ties.
	parts := AllocateByPercent(100, []float64{1, 1, 1})
	assert.Equal(t, []int64{34, 33, 33}, parts)
}

func TestAllocateByPercent_Degenerate(t *testing.T) {
	assert.Nil(t, AllocateByPercent(100, nil))
	assert.Equal(t, []int64{0, 0}, AllocateByPercent(0, []float64{1, 1}))
	assert.Equal(t, []int64{0, 0}, AllocateByPercent(100, []float64{0, 0}))
}
