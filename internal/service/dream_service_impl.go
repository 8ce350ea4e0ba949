package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
)

type dreamService struct {
	dreams repository.DreamRepo
}

func NewDreamService(dreams repository.DreamRepo) DreamService {
	return &dreamService{dreams: dreams}
}

func (s *dreamService) Create(ctx context.Context, d *domain.Dream) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Status == "" {
		d.Status = domain.DreamActive
	}
	if err := d.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.dreams.Create(ctx, d)
}

func (s *dreamService) GetByID(ctx context.Context, id string) (*domain.Dream, error) {
	return s.dreams.GetByID(ctx, id)
}

func (s *dreamService) List(ctx context.Context, includeArchived bool) ([]*domain.Dream, error) {
	return s.dreams.List(ctx, includeArchived)
}

func (s *dreamService) ListByOwner(ctx context.Context, ownerID string, includeArchived bool) ([]*domain.Dream, error) {
	return s.dreams.ListByOwner(ctx, ownerID, includeArchived)
}

func (s *dreamService) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	dreams, err := s.dreams.ListByOwner(ctx, ownerID, false)
	if err != nil {
		return 0, err
	}
	return len(dreams), nil
}

func (s *dreamService) Update(ctx context.Context, d *domain.Dream) error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.UpdatedAt = time.Now().UTC()
	return s.dreams.Update(ctx, d)
}

func (s *dreamService) Archive(ctx context.Context, id string) error {
	return s.dreams.Archive(ctx, id)
}

func (s *dreamService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		d, err := s.dreams.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if d.Status != domain.DreamArchived {
			return fmt.Errorf("dream must be archived before deletion (use --force to override)")
		}
	}
	return s.dreams.Delete(ctx, id)
}
