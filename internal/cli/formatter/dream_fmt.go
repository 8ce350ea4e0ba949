package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/togetherforward/forward/internal/domain"
)

// FormatDreamList renders the dream table shown by `forward dream list`.
func FormatDreamList(dreams []*domain.Dream) string {
	headers := []string{"ID", "Dream", "Category", "Target", "Progress", "Status"}
	rows := make([][]string, 0, len(dreams))

	for _, d := range dreams {
		target := Dim("—")
		if d.TargetDate != nil {
			target = HumanDate(*d.TargetDate)
		}
		progress := RenderProgress(d.ProgressPct()/100, 10)
		if d.TargetAmountCents <= 0 {
			progress = Dim("no amount")
		}
		rows = append(rows, []string{
			Dim(d.DisplayID()),
			d.Title,
			string(d.Category),
			target,
			progress,
			StatusPill(d.Status),
		})
	}

	return RenderTable(headers, rows)
}

// DreamDetailData bundles everything the detail view shows for one dream.
type DreamDetailData struct {
	Dream      *domain.Dream
	Milestones []*domain.Milestone
	Tasks      []*domain.Task
	Budget     []*domain.BudgetCategory
	Currency   string
}

// FormatDreamDetail renders the full dream view: header, savings, then
// milestones, tasks and budget sections.
func FormatDreamDetail(data DreamDetailData) string {
	d := data.Dream
	now := time.Now()

	var b strings.Builder
	b.WriteString(Header(d.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s  %s\n", StatusPill(d.Status), string(d.Category), Dim(d.DisplayID()))

	if d.TargetAmountCents > 0 {
		fmt.Fprintf(&b, "\nSaved %s of %s  %s\n",
			MoneyWithCurrency(d.SavedAmountCents, data.Currency),
			MoneyWithCurrency(d.TargetAmountCents, data.Currency),
			RenderProgress(d.ProgressPct()/100, 20))
		if monthly := d.RequiredMonthlyCents(now); monthly > 0 {
			fmt.Fprintf(&b, "Needs %s per month to stay on track\n", MoneyWithCurrency(monthly, data.Currency))
		}
	}
	if d.TargetDate != nil {
		fmt.Fprintf(&b, "Target date: %s\n", HumanDate(*d.TargetDate))
	}

	if len(data.Milestones) > 0 {
		b.WriteString("\n" + Header("Milestones") + "\n")
		for _, m := range data.Milestones {
			due := Dim("no due date")
			if m.DueDate != nil {
				due = HumanDate(*m.DueDate)
				if m.Overdue(now) {
					due = StyleRed.Render(due + " (overdue)")
				}
			}
			fmt.Fprintf(&b, "%2d. %s %s  %s\n", m.Seq, milestoneMark(m.Status), m.Title, due)
		}
	}

	if len(data.Tasks) > 0 {
		b.WriteString("\n" + Header("Tasks") + "\n")
		for _, t := range data.Tasks {
			fmt.Fprintf(&b, "%s %s  %s\n", TaskMark(t.Status), t.Title, AssigneeTag(t.Assignee))
		}
	}

	if len(data.Budget) > 0 {
		b.WriteString("\n" + Header("Budget") + "\n")
		b.WriteString(FormatBudget(data.Budget, data.Currency))
	}

	return b.String()
}

func milestoneMark(status domain.MilestoneStatus) string {
	switch status {
	case domain.MilestoneDone:
		return StyleGreen.Render("✓")
	case domain.MilestoneInProgress:
		return StyleYellow.Render("›")
	default:
		return StyleDim.Render("·")
	}
}
