package formatter

import (
	"fmt"
	"strings"
	"time"
)

// Money renders cents as a grouped decimal string, e.g. 2500000 -> "25,000.00".
func Money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%s%s.%02d", sign, b.String(), frac)
}

// MoneyWithCurrency prefixes Money with a currency code.
func MoneyWithCurrency(cents int64, currency string) string {
	if currency == "" {
		return Money(cents)
	}
	return currency + " " + Money(cents)
}

// HumanDate renders an absolute date, with Today/Yesterday shortcuts.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}
