package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
)

type taskService struct {
	tasks      repository.TaskRepo
	milestones repository.MilestoneRepo
}

func NewTaskService(tasks repository.TaskRepo, milestones repository.MilestoneRepo) TaskService {
	return &taskService{tasks: tasks, milestones: milestones}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.MilestoneID != "" {
		m, err := s.milestones.GetByID(ctx, t.MilestoneID)
		if err != nil {
			return fmt.Errorf("looking up milestone: %w", err)
		}
		if m.DreamID != t.DreamID {
			return fmt.Errorf("milestone belongs to a different dream")
		}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.Assignee == "" {
		t.Assignee = domain.AssigneeBoth
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByDream(ctx context.Context, dreamID string) ([]*domain.Task, error) {
	return s.tasks.ListByDream(ctx, dreamID)
}

func (s *taskService) ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.Task, error) {
	return s.tasks.ListByMilestone(ctx, milestoneID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

// Complete marks the task done and stamps CompletedAt. Completing an
// already-done task is a no-op.
func (s *taskService) Complete(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.Status == domain.TaskDone {
		return nil
	}
	now := time.Now().UTC()
	t.Status = domain.TaskDone
	t.CompletedAt = &now
	t.UpdatedAt = now
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Assign(ctx context.Context, id string, assignee domain.TaskAssignee) error {
	switch assignee {
	case domain.AssigneeMe, domain.AssigneePartner, domain.AssigneeBoth:
	default:
		return fmt.Errorf("unknown assignee %q", assignee)
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Assignee = assignee
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
