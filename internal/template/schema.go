package template

// GoalSchema is the top-level JSON structure of a goal template: a dream
// outline with milestones, tasks and a budget split, all sized relative to
// the target amount and dated relative to the target date.
type GoalSchema struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category"`
	Milestones  []MilestoneConfig `json:"milestones"`
	Tasks       []TaskConfig      `json:"tasks,omitempty"`
	Budget      []BudgetConfig    `json:"budget,omitempty"`
}

// MilestoneConfig describes one milestone. MonthsBefore positions its due
// date that many months before the dream's target date; AmountPct sizes its
// target amount as a percentage of the dream's target amount.
type MilestoneConfig struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	MonthsBefore int     `json:"months_before"`
	AmountPct    float64 `json:"amount_pct,omitempty"`
}

// TaskConfig describes one task, optionally attached to a milestone by its
// template ID.
type TaskConfig struct {
	Title       string `json:"title"`
	MilestoneID string `json:"milestone_id,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
}

// BudgetConfig is one budget category with its share of the target amount.
type BudgetConfig struct {
	Name string  `json:"name"`
	Pct  float64 `json:"pct"`
}
