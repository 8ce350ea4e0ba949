package repository

import (
	"context"

	"github.com/togetherforward/forward/internal/domain"
)

type DreamRepo interface {
	Create(ctx context.Context, d *domain.Dream) error
	GetByID(ctx context.Context, id string) (*domain.Dream, error)
	ListByOwner(ctx context.Context, ownerID string, includeArchived bool) ([]*domain.Dream, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Dream, error)
	Update(ctx context.Context, d *domain.Dream) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByDream(ctx context.Context, dreamID string) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByDream(ctx context.Context, dreamID string) ([]*domain.Task, error)
	ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type BudgetRepo interface {
	Create(ctx context.Context, c *domain.BudgetCategory) error
	GetByID(ctx context.Context, id string) (*domain.BudgetCategory, error)
	ListByDream(ctx context.Context, dreamID string) ([]*domain.BudgetCategory, error)
	Update(ctx context.Context, c *domain.BudgetCategory) error
	Delete(ctx context.Context, id string) error
	DeleteByDream(ctx context.Context, dreamID string) error
}

type AssessmentRepo interface {
	CreateSession(ctx context.Context, s *domain.AssessmentSession) error
	GetSession(ctx context.Context, id string) (*domain.AssessmentSession, error)
	GetSessionByJoinCode(ctx context.Context, code string) (*domain.AssessmentSession, error)
	UpdateSession(ctx context.Context, s *domain.AssessmentSession) error
	UpsertAnswer(ctx context.Context, a *domain.Answer) error
	ListAnswers(ctx context.Context, sessionID string, partner domain.Partner) ([]*domain.Answer, error)
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.CoupleProfile, error)
	Upsert(ctx context.Context, p *domain.CoupleProfile) error
}

type InviteRepo interface {
	Create(ctx context.Context, i *domain.Invite) error
	GetByCode(ctx context.Context, code string) (*domain.Invite, error)
	Update(ctx context.Context, i *domain.Invite) error
}

// LocalKV is the app's stand-in for browser local storage: small string
// values read-then-deleted by the auth gate (pending invite codes) and the
// guest-dream staging area.
type LocalKV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
