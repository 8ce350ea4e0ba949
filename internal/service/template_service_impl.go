package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/togetherforward/forward/internal/db"
	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
	tmpl "github.com/togetherforward/forward/internal/template"
)

type templateService struct {
	templateDir string
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

type templateEntry struct {
	Index  int
	Schema *tmpl.GoalSchema
}

// NewTemplateService serves the builtin goal templates plus any JSON
// templates found in templateDir (may be empty).
func NewTemplateService(
	templateDir string,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TemplateService {
	return &templateService{
		templateDir: templateDir,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *templateService) List(ctx context.Context) ([]GoalTemplate, error) {
	entries, err := s.loadTemplateEntries()
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	templates := make([]GoalTemplate, 0, len(entries))
	for _, entry := range entries {
		templates = append(templates, GoalTemplate{
			NumericID:   entry.Index,
			ID:          entry.Schema.ID,
			Name:        entry.Schema.Name,
			Category:    entry.Schema.Category,
			Version:     entry.Schema.Version,
			Description: entry.Schema.Description,
		})
	}
	return templates, nil
}

func (s *templateService) Get(ctx context.Context, name string) (*GoalTemplate, error) {
	entry, err := s.resolveTemplate(name)
	if err != nil {
		return nil, err
	}
	return &GoalTemplate{
		NumericID:   entry.Index,
		ID:          entry.Schema.ID,
		Name:        entry.Schema.Name,
		Category:    entry.Schema.Category,
		Version:     entry.Schema.Version,
		Description: entry.Schema.Description,
	}, nil
}

// InitDream instantiates a template and persists the dream with all its
// milestones, tasks and budget categories in one transaction.
func (s *templateService) InitDream(ctx context.Context, templateName, title, ownerID string, targetDate time.Time, targetAmountCents int64) (dream *domain.Dream, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"template": templateName,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "init-dream",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	entry, err := s.resolveTemplate(templateName)
	if err != nil {
		return nil, err
	}

	generated, err := tmpl.Execute(entry.Schema, title, ownerID, targetDate, targetAmountCents)
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	fields["milestone_count"] = len(generated.Milestones)
	fields["task_count"] = len(generated.Tasks)
	fields["budget_count"] = len(generated.Budget)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDreams := repository.NewSQLiteDreamRepo(tx)
		txMilestones := repository.NewSQLiteMilestoneRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txBudget := repository.NewSQLiteBudgetRepo(tx)

		if err := txDreams.Create(ctx, generated.Dream); err != nil {
			return fmt.Errorf("creating dream: %w", err)
		}
		for _, m := range generated.Milestones {
			if err := txMilestones.Create(ctx, m); err != nil {
				return fmt.Errorf("creating milestone '%s': %w", m.Title, err)
			}
		}
		for _, task := range generated.Tasks {
			if err := txTasks.Create(ctx, task); err != nil {
				return fmt.Errorf("creating task '%s': %w", task.Title, err)
			}
		}
		for _, c := range generated.Budget {
			if err := txBudget.Create(ctx, c); err != nil {
				return fmt.Errorf("creating budget category '%s': %w", c.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return generated.Dream, nil
}

func (s *templateService) resolveTemplate(name string) (*templateEntry, error) {
	input := strings.TrimSpace(name)
	if input == "" {
		return nil, fmt.Errorf("template '%s' not found: empty template name", name)
	}

	entries, err := s.loadTemplateEntries()
	if err != nil {
		return nil, fmt.Errorf("template '%s' not found: listing templates: %w", name, err)
	}

	// Resolve by schema ID or display name (case-insensitive).
	for i := range entries {
		entry := &entries[i]
		if strings.EqualFold(entry.Schema.ID, input) ||
			strings.EqualFold(entry.Schema.Name, input) {
			return entry, nil
		}
	}

	// Resolve by integer selector from `template list`.
	if numericID, err := strconv.Atoi(input); err == nil {
		for i := range entries {
			entry := &entries[i]
			if entry.Index == numericID {
				return entry, nil
			}
		}
	}

	return nil, fmt.Errorf("template '%s' not found", name)
}

func (s *templateService) loadTemplateEntries() ([]templateEntry, error) {
	schemas, err := tmpl.Builtins()
	if err != nil {
		return nil, err
	}

	if s.templateDir != "" {
		files, err := filepath.Glob(filepath.Join(s.templateDir, "*.json"))
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			schema, err := tmpl.LoadSchema(file)
			if err != nil {
				continue // skip invalid templates
			}
			schemas = append(schemas, schema)
		}
	}

	entries := make([]templateEntry, 0, len(schemas))
	for i, schema := range schemas {
		entries = append(entries, templateEntry{Index: i + 1, Schema: schema})
	}
	return entries, nil
}
