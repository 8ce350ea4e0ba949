package service

import (
	"context"
	"time"

	"github.com/togetherforward/forward/internal/contract"
	"github.com/togetherforward/forward/internal/domain"
)

type DreamService interface {
	Create(ctx context.Context, d *domain.Dream) error
	GetByID(ctx context.Context, id string) (*domain.Dream, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Dream, error)
	ListByOwner(ctx context.Context, ownerID string, includeArchived bool) ([]*domain.Dream, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	Update(ctx context.Context, d *domain.Dream) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type MilestoneService interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByDream(ctx context.Context, dreamID string) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	SetStatus(ctx context.Context, id string, status domain.MilestoneStatus) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByDream(ctx context.Context, dreamID string) ([]*domain.Task, error)
	ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Complete(ctx context.Context, id string) error
	Assign(ctx context.Context, id string, assignee domain.TaskAssignee) error
	Delete(ctx context.Context, id string) error
}

// BudgetSuggestion is one suggested category from the default split tables.
type BudgetSuggestion struct {
	Name         string
	PlannedCents int64
}

type BudgetService interface {
	Create(ctx context.Context, c *domain.BudgetCategory) error
	ListByDream(ctx context.Context, dreamID string) ([]*domain.BudgetCategory, error)
	Update(ctx context.Context, c *domain.BudgetCategory) error
	RecordSpend(ctx context.Context, id string, amountCents int64) error
	Delete(ctx context.Context, id string) error
	Totals(ctx context.Context, dreamID string) (domain.BudgetTotals, error)
	SuggestAllocation(category domain.DreamCategory, totalCents int64) ([]BudgetSuggestion, error)
	ApplySuggestion(ctx context.Context, dreamID string, category domain.DreamCategory, totalCents int64) ([]*domain.BudgetCategory, error)
}

type AssessmentService interface {
	Start(ctx context.Context, dreamID string) (*domain.AssessmentSession, error)
	Join(ctx context.Context, joinCode string) (*domain.AssessmentSession, error)
	RecordAnswer(ctx context.Context, sessionID string, partner domain.Partner, questionID string, value int) error
	Score(ctx context.Context, sessionID string) (*domain.CompatibilityResult, error)
}

type PortfolioService interface {
	Analyze(ctx context.Context, req contract.AnalyzeRequest) (*contract.AnalyzeResponse, error)
}

// GoalTemplate is a list entry for a goal template.
type GoalTemplate struct {
	NumericID   int
	ID          string
	Name        string
	Category    string
	Version     string
	Description string
}

type TemplateService interface {
	List(ctx context.Context) ([]GoalTemplate, error)
	Get(ctx context.Context, name string) (*GoalTemplate, error)
	InitDream(ctx context.Context, templateName, title, ownerID string, targetDate time.Time, targetAmountCents int64) (*domain.Dream, error)
}

type InviteService interface {
	Create(ctx context.Context, kind domain.InviteKind, dreamID, inviterID string) (*domain.Invite, error)
	Accept(ctx context.Context, code string, accepterID string) (*domain.Invite, error)
}

// GuestDreamService stages a dream created before sign-up in local storage
// and re-homes it once an account exists.
type GuestDreamService interface {
	Stage(ctx context.Context, d *domain.Dream) error
	Load(ctx context.Context) (*domain.Dream, error)
	HasValidGuestDream(ctx context.Context) bool
	AttachToAccount(ctx context.Context, ownerID string) (dreamID string, err error)
	Clear(ctx context.Context) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.CoupleProfile, error)
	Update(ctx context.Context, p *domain.CoupleProfile) error
}
