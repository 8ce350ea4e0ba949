package template

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/togetherforward/forward/internal/domain"
)

// GeneratedDream is the output of template execution: a dream plus every
// entity hanging off it, ready to be persisted in one transaction.
type GeneratedDream struct {
	Dream      *domain.Dream
	Milestones []*domain.Milestone
	Tasks      []*domain.Task
	Budget     []*domain.BudgetCategory
}

// LoadSchema reads and parses a goal template JSON file.
func LoadSchema(path string) (*GoalSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

// ParseSchema parses and validates goal template JSON.
func ParseSchema(data []byte) (*GoalSchema, error) {
	var schema GoalSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	if err := Validate(&schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// Execute instantiates a goal template into domain objects. Milestone due
// dates count back from the target date by months_before; milestone and
// budget amounts are percentage shares of the target amount, budget shares
// rounded so they sum exactly to it.
func Execute(schema *GoalSchema, title string, ownerID string, targetDate time.Time, targetAmountCents int64) (*GeneratedDream, error) {
	if err := Validate(schema); err != nil {
		return nil, err
	}
	if title == "" {
		title = schema.Name
	}

	now := time.Now().UTC()
	dream := &domain.Dream{
		ID:                uuid.New().String(),
		OwnerID:           ownerID,
		Title:             title,
		Category:          domain.DreamCategory(schema.Category),
		TargetDate:        &targetDate,
		TargetAmountCents: targetAmountCents,
		Status:            domain.DreamActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// Template milestone ID -> real UUID mapping for task references.
	idMap := make(map[string]string, len(schema.Milestones))

	milestones := make([]*domain.Milestone, 0, len(schema.Milestones))
	for i, mc := range schema.Milestones {
		due := targetDate.AddDate(0, -mc.MonthsBefore, 0)
		if due.Before(now) {
			due = now
		}
		realID := uuid.New().String()
		idMap[mc.ID] = realID
		milestones = append(milestones, &domain.Milestone{
			ID:                realID,
			DreamID:           dream.ID,
			Title:             mc.Title,
			Seq:               i + 1,
			DueDate:           &due,
			TargetAmountCents: int64(float64(targetAmountCents) * mc.AmountPct / 100),
			Status:            domain.MilestoneUpcoming,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for _, tc := range schema.Tasks {
		assignee := domain.TaskAssignee(tc.Assignee)
		if assignee == "" {
			assignee = domain.AssigneeBoth
		}
		tasks = append(tasks, &domain.Task{
			ID:          uuid.New().String(),
			DreamID:     dream.ID,
			MilestoneID: idMap[tc.MilestoneID],
			Title:       tc.Title,
			Assignee:    assignee,
			Status:      domain.TaskTodo,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	var budget []*domain.BudgetCategory
	if len(schema.Budget) > 0 {
		weights := make([]float64, len(schema.Budget))
		for i, bc := range schema.Budget {
			weights[i] = bc.Pct
		}
		parts := domain.AllocateByPercent(targetAmountCents, weights)
		budget = make([]*domain.BudgetCategory, 0, len(schema.Budget))
		for i, bc := range schema.Budget {
			budget = append(budget, &domain.BudgetCategory{
				ID:           uuid.New().String(),
				DreamID:      dream.ID,
				Name:         bc.Name,
				PlannedCents: parts[i],
				Seq:          i + 1,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
		}
	}

	return &GeneratedDream{
		Dream:      dream,
		Milestones: milestones,
		Tasks:      tasks,
		Budget:     budget,
	}, nil
}
