package service

import (
	"context"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
)

//go:embed budget_splits.yaml
var budgetSplitsYAML []byte

// splitEntry is one row of the default-split tables.
type splitEntry struct {
	Name string  `yaml:"name"`
	Pct  float64 `yaml:"pct"`
}

var (
	splitsOnce sync.Once
	splits     map[string][]splitEntry
	splitsErr  error
)

func defaultSplits() (map[string][]splitEntry, error) {
	splitsOnce.Do(func() {
		splitsErr = yaml.Unmarshal(budgetSplitsYAML, &splits)
	})
	return splits, splitsErr
}

type budgetService struct {
	budget repository.BudgetRepo
}

func NewBudgetService(budget repository.BudgetRepo) BudgetService {
	return &budgetService{budget: budget}
}

func (s *budgetService) Create(ctx context.Context, c *domain.BudgetCategory) error {
	if c.Name == "" {
		return fmt.Errorf("budget category name is required")
	}
	if c.PlannedCents < 0 {
		return fmt.Errorf("planned amount must not be negative")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Seq == 0 {
		existing, err := s.budget.ListByDream(ctx, c.DreamID)
		if err != nil {
			return err
		}
		c.Seq = len(existing) + 1
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.budget.Create(ctx, c)
}

func (s *budgetService) ListByDream(ctx context.Context, dreamID string) ([]*domain.BudgetCategory, error) {
	return s.budget.ListByDream(ctx, dreamID)
}

func (s *budgetService) Update(ctx context.Context, c *domain.BudgetCategory) error {
	c.UpdatedAt = time.Now().UTC()
	return s.budget.Update(ctx, c)
}

// RecordSpend adds to a category's spent amount. Negative amounts correct
// earlier entries but cannot push the total below zero.
func (s *budgetService) RecordSpend(ctx context.Context, id string, amountCents int64) error {
	c, err := s.budget.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.SpentCents+amountCents < 0 {
		return fmt.Errorf("spend correction would make %q negative", c.Name)
	}
	c.SpentCents += amountCents
	c.UpdatedAt = time.Now().UTC()
	return s.budget.Update(ctx, c)
}

func (s *budgetService) Delete(ctx context.Context, id string) error {
	return s.budget.Delete(ctx, id)
}

func (s *budgetService) Totals(ctx context.Context, dreamID string) (domain.BudgetTotals, error) {
	categories, err := s.budget.ListByDream(ctx, dreamID)
	if err != nil {
		return domain.BudgetTotals{}, err
	}
	return domain.SumBudget(categories), nil
}

// SuggestAllocation returns the default split for a dream category, with
// amounts rounded so they sum exactly to totalCents.
func (s *budgetService) SuggestAllocation(category domain.DreamCategory, totalCents int64) ([]BudgetSuggestion, error) {
	if totalCents <= 0 {
		return nil, fmt.Errorf("total amount must be positive")
	}
	tables, err := defaultSplits()
	if err != nil {
		return nil, fmt.Errorf("loading default splits: %w", err)
	}
	entries, ok := tables[string(category)]
	if !ok {
		return nil, fmt.Errorf("no default split for category %q", category)
	}

	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = e.Pct
	}
	parts := domain.AllocateByPercent(totalCents, weights)

	suggestions := make([]BudgetSuggestion, len(entries))
	for i, e := range entries {
		suggestions[i] = BudgetSuggestion{Name: e.Name, PlannedCents: parts[i]}
	}
	return suggestions, nil
}

// ApplySuggestion replaces a dream's budget with the default split.
func (s *budgetService) ApplySuggestion(ctx context.Context, dreamID string, category domain.DreamCategory, totalCents int64) ([]*domain.BudgetCategory, error) {
	suggestions, err := s.SuggestAllocation(category, totalCents)
	if err != nil {
		return nil, err
	}
	if err := s.budget.DeleteByDream(ctx, dreamID); err != nil {
		return nil, fmt.Errorf("clearing existing budget: %w", err)
	}

	now := time.Now().UTC()
	created := make([]*domain.BudgetCategory, 0, len(suggestions))
	for i, sug := range suggestions {
		c := &domain.BudgetCategory{
			ID:           uuid.New().String(),
			DreamID:      dreamID,
			Name:         sug.Name,
			PlannedCents: sug.PlannedCents,
			Seq:          i + 1,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.budget.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("creating category %q: %w", c.Name, err)
		}
		created = append(created, c)
	}
	return created, nil
}
