package formatter

import (
	"fmt"
	"strings"

	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/service"
)

// FormatBudget renders a dream's budget categories with spend progress and
// a totals line.
func FormatBudget(categories []*domain.BudgetCategory, currency string) string {
	headers := []string{"Category", "Planned", "Spent", "Remaining", ""}
	rows := make([][]string, 0, len(categories))

	for _, c := range categories {
		remaining := Money(c.RemainingCents())
		if c.RemainingCents() < 0 {
			remaining = StyleRed.Render(remaining)
		}
		var spentPct float64
		if c.PlannedCents > 0 {
			spentPct = float64(c.SpentCents) / float64(c.PlannedCents)
		}
		rows = append(rows, []string{
			c.Name,
			Money(c.PlannedCents),
			Money(c.SpentCents),
			remaining,
			RenderProgress(spentPct, 8),
		})
	}

	totals := domain.SumBudget(categories)

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	fmt.Fprintf(&b, "\n%s %s planned, %s spent\n",
		Bold("Total:"),
		MoneyWithCurrency(totals.PlannedCents, currency),
		MoneyWithCurrency(totals.SpentCents, currency))
	return b.String()
}

// FormatSuggestions renders the default-split suggestion produced by
// `forward budget suggest`.
func FormatSuggestions(category domain.DreamCategory, suggestions []service.BudgetSuggestion, currency string) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Suggested %s budget", category)) + "\n")

	var total int64
	for _, s := range suggestions {
		fmt.Fprintf(&b, "%-18s %s\n", s.Name, Money(s.PlannedCents))
		total += s.PlannedCents
	}
	fmt.Fprintf(&b, "\n%s %s\n", Bold("Total:"), MoneyWithCurrency(total, currency))
	b.WriteString(Dim("Run `forward budget apply` to replace the dream's budget with this split.") + "\n")
	return b.String()
}
