package formatter

import (
	"strconv"

	"github.com/togetherforward/forward/internal/service"
)

// FormatTemplateList renders the goal template table.
func FormatTemplateList(templates []service.GoalTemplate) string {
	headers := []string{"#", "Name", "Category", "Description"}
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{
			Dim(strconv.Itoa(t.NumericID)),
			t.Name,
			t.Category,
			Dim(t.Description),
		})
	}
	return RenderTable(headers, rows)
}
