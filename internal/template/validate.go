package template

import (
	"fmt"

	"github.com/togetherforward/forward/internal/domain"
)

// Validate checks a goal schema for structural problems before execution.
func Validate(schema *GoalSchema) error {
	if schema.ID == "" {
		return fmt.Errorf("template is missing an id")
	}
	if schema.Name == "" {
		return fmt.Errorf("template '%s' is missing a name", schema.ID)
	}
	if !domain.ValidDreamCategories[schema.Category] {
		return fmt.Errorf("template '%s' has unknown category %q", schema.ID, schema.Category)
	}
	if len(schema.Milestones) == 0 {
		return fmt.Errorf("template '%s' has no milestones", schema.ID)
	}

	seen := make(map[string]bool, len(schema.Milestones))
	for _, mc := range schema.Milestones {
		if mc.ID == "" {
			return fmt.Errorf("template '%s': milestone %q is missing an id", schema.ID, mc.Title)
		}
		if seen[mc.ID] {
			return fmt.Errorf("template '%s': duplicate milestone id %q", schema.ID, mc.ID)
		}
		seen[mc.ID] = true
		if mc.Title == "" {
			return fmt.Errorf("template '%s': milestone %q has no title", schema.ID, mc.ID)
		}
		if mc.MonthsBefore < 0 {
			return fmt.Errorf("template '%s': milestone %q has negative months_before", schema.ID, mc.ID)
		}
	}

	for _, tc := range schema.Tasks {
		if tc.Title == "" {
			return fmt.Errorf("template '%s': task with empty title", schema.ID)
		}
		if tc.MilestoneID != "" && !seen[tc.MilestoneID] {
			return fmt.Errorf("template '%s': task %q references unknown milestone %q", schema.ID, tc.Title, tc.MilestoneID)
		}
		if tc.Assignee != "" {
			switch domain.TaskAssignee(tc.Assignee) {
			case domain.AssigneeMe, domain.AssigneePartner, domain.AssigneeBoth:
			default:
				return fmt.Errorf("template '%s': task %q has unknown assignee %q", schema.ID, tc.Title, tc.Assignee)
			}
		}
	}

	var pctSum float64
	for _, bc := range schema.Budget {
		if bc.Name == "" {
			return fmt.Errorf("template '%s': budget category with empty name", schema.ID)
		}
		if bc.Pct <= 0 {
			return fmt.Errorf("template '%s': budget category %q needs a positive pct", schema.ID, bc.Name)
		}
		pctSum += bc.Pct
	}
	if len(schema.Budget) > 0 && (pctSum < 99.5 || pctSum > 100.5) {
		return fmt.Errorf("template '%s': budget percentages sum to %.1f, want 100", schema.ID, pctSum)
	}
	return nil
}
