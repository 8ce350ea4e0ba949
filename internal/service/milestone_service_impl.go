package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
)

type milestoneService struct {
	milestones repository.MilestoneRepo
	dreams     repository.DreamRepo
}

func NewMilestoneService(milestones repository.MilestoneRepo, dreams repository.DreamRepo) MilestoneService {
	return &milestoneService{milestones: milestones, dreams: dreams}
}

func (s *milestoneService) Create(ctx context.Context, m *domain.Milestone) error {
	if m.Title == "" {
		return fmt.Errorf("milestone title is required")
	}
	if _, err := s.dreams.GetByID(ctx, m.DreamID); err != nil {
		return fmt.Errorf("looking up dream: %w", err)
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Status == "" {
		m.Status = domain.MilestoneUpcoming
	}
	if m.Seq == 0 {
		existing, err := s.milestones.ListByDream(ctx, m.DreamID)
		if err != nil {
			return err
		}
		m.Seq = len(existing) + 1
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.milestones.Create(ctx, m)
}

func (s *milestoneService) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	return s.milestones.GetByID(ctx, id)
}

func (s *milestoneService) ListByDream(ctx context.Context, dreamID string) ([]*domain.Milestone, error) {
	return s.milestones.ListByDream(ctx, dreamID)
}

func (s *milestoneService) Update(ctx context.Context, m *domain.Milestone) error {
	m.UpdatedAt = time.Now().UTC()
	return s.milestones.Update(ctx, m)
}

func (s *milestoneService) SetStatus(ctx context.Context, id string, status domain.MilestoneStatus) error {
	switch status {
	case domain.MilestoneUpcoming, domain.MilestoneInProgress, domain.MilestoneDone:
	default:
		return fmt.Errorf("unknown milestone status %q", status)
	}
	m, err := s.milestones.GetByID(ctx, id)
	if err != nil {
		return err
	}
	m.Status = status
	m.UpdatedAt = time.Now().UTC()
	return s.milestones.Update(ctx, m)
}

func (s *milestoneService) Delete(ctx context.Context, id string) error {
	return s.milestones.Delete(ctx, id)
}
