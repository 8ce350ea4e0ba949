package domain

import "sort"

// AllocateByPercent splits totalCents across the given percentage weights
// using largest-remainder rounding, so the parts always sum exactly to the
// total. Weights need not sum to 100; they are normalized first.
func AllocateByPercent(totalCents int64, weights []float64) []int64 {
	if len(weights) == 0 {
		return nil
	}
	var sum float64
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	parts := make([]int64, len(weights))
	if sum <= 0 || totalCents <= 0 {
		return parts
	}

	type slot struct {
		idx  int
		frac float64
	}
	var allocated int64
	slots := make([]slot, len(weights))
	for i, w := range weights {
		if w < 0 {
			w = 0
		}
		exact := float64(totalCents) * w / sum
		parts[i] = int64(exact)
		allocated += parts[i]
		slots[i] = slot{idx: i, frac: exact - float64(parts[i])}
	}

	// Hand the leftover cents to the largest fractional remainders, index
	// order breaking ties so the result is deterministic.
	sort.SliceStable(slots, func(a, b int) bool {
		return slots[a].frac > slots[b].frac
	})
	for i := int64(0); i < totalCents-allocated; i++ {
		parts[slots[int(i)%len(slots)].idx]++
	}
	return parts
}
