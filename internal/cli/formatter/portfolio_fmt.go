package formatter

import (
	"fmt"
	"strings"

	"github.com/togetherforward/forward/internal/contract"
)

// FormatAnalysis renders the portfolio analysis: the capacity line, every
// finding, and any warnings.
func FormatAnalysis(a *contract.AnalyzeResponse, currency string) string {
	var b strings.Builder
	b.WriteString(Header("Portfolio") + "\n")

	commitLine := fmt.Sprintf("%d active dreams need %s per month", a.DreamCount, MoneyWithCurrency(a.MonthlyCommitCents, currency))
	if a.SavingsCapacityCents > 0 {
		commitLine += fmt.Sprintf(" of a %s capacity", MoneyWithCurrency(a.SavingsCapacityCents, currency))
	}
	if a.OverCommitted {
		b.WriteString(StyleRed.Render(commitLine+" — over-committed") + "\n")
	} else {
		b.WriteString(commitLine + "\n")
	}

	if len(a.Findings) > 0 {
		b.WriteString("\n")
		for _, f := range a.Findings {
			switch f.Kind {
			case contract.FindingConflict:
				fmt.Fprintf(&b, "%s %s\n", StyleRed.Render("✗ conflict"), f.Reason)
			case contract.FindingSynergy:
				fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("✓ synergy"), f.Reason)
			}
		}
	}

	for _, w := range a.Warnings {
		fmt.Fprintf(&b, "\n%s %s\n", StyleYellow.Render("!"), w)
	}

	return b.String()
}

// FormatOptimize renders Luna's optimization suggestions.
func FormatOptimize(o *contract.OptimizeResponse) string {
	var b strings.Builder
	b.WriteString(Header("Luna suggests") + "\n")
	b.WriteString(o.Summary + "\n")

	for i, s := range o.Suggestions {
		fmt.Fprintf(&b, "\n%2d. %s\n", i+1, s.Text)
		if len(s.DreamIDs) > 0 {
			b.WriteString("    " + Dim(strings.Join(s.DreamIDs, ", ")) + "\n")
		}
	}

	if o.Source == "deterministic" {
		b.WriteString("\n" + Dim("Luna is offline; these are rule-based suggestions.") + "\n")
	}
	return b.String()
}
