package service

import (
	"time"

	"github.com/togetherforward/forward/internal/domain"
)

// savingWindow is the span a dream draws on the couple's monthly savings:
// from its creation until its target date. Dreams without a target date are
// open-ended and overlap everything.
type savingWindow struct {
	start time.Time
	end   *time.Time
}

func windowFor(d *domain.Dream) savingWindow {
	return savingWindow{start: d.CreatedAt, end: d.TargetDate}
}

// overlaps reports whether two saving windows share any time.
func (w savingWindow) overlaps(o savingWindow) bool {
	if w.end != nil && !w.end.After(o.start) {
		return false
	}
	if o.end != nil && !o.end.After(w.start) {
		return false
	}
	return true
}

// fundsNext reports whether a finishes early enough that its contribution
// can roll into b: a's target date precedes b's by at least one month.
func fundsNext(a, b *domain.Dream) bool {
	if a.TargetDate == nil || b.TargetDate == nil {
		return false
	}
	return a.TargetDate.AddDate(0, 1, 0).Before(*b.TargetDate) || a.TargetDate.AddDate(0, 1, 0).Equal(*b.TargetDate)
}

// monthlyCommitCents sums the monthly contributions of active dreams.
func monthlyCommitCents(dreams []*domain.Dream) int64 {
	var total int64
	for _, d := range dreams {
		if d.Status == domain.DreamActive {
			total += d.MonthlyContribCents
		}
	}
	return total
}
