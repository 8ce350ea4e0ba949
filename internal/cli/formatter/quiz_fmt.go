package formatter

import (
	"fmt"
	"strings"

	"github.com/togetherforward/forward/internal/domain"
)

// FormatCompatibilityResult renders a scored quiz: overall band plus a bar
// per dimension.
func FormatCompatibilityResult(r *domain.CompatibilityResult) string {
	var b strings.Builder
	b.WriteString(Header("Compatibility") + "\n")
	fmt.Fprintf(&b, "Overall %.0f/100 — %s\n\n", r.Overall, Bold(r.Band))

	for _, ds := range r.Dimensions {
		fmt.Fprintf(&b, "%-14s %s\n", string(ds.Dimension), RenderProgress(ds.Score/100, 14))
	}
	return b.String()
}
