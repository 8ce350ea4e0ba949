package service

import (
	"context"
	"fmt"

	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.CoupleProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, p *domain.CoupleProfile) error {
	if p.SavingsCapacityCents < 0 {
		return fmt.Errorf("savings capacity must not be negative")
	}
	if p.Currency == "" {
		p.Currency = domain.DefaultCurrency
	}
	return s.profiles.Upsert(ctx, p)
}
