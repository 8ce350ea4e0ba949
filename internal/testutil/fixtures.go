package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/togetherforward/forward/internal/domain"
)

// Dream options
type DreamOption func(*domain.Dream)

func WithCategory(c domain.DreamCategory) DreamOption {
	return func(d *domain.Dream) {
		d.Category = c
	}
}

func WithTargetDate(t time.Time) DreamOption {
	return func(d *domain.Dream) {
		d.TargetDate = &t
	}
}

func WithTargetAmount(cents int64) DreamOption {
	return func(d *domain.Dream) {
		d.TargetAmountCents = cents
	}
}

func WithMonthlyContrib(cents int64) DreamOption {
	return func(d *domain.Dream) {
		d.MonthlyContribCents = cents
	}
}

func WithOwner(ownerID string) DreamOption {
	return func(d *domain.Dream) {
		d.OwnerID = ownerID
	}
}

func WithDreamStatus(s domain.DreamStatus) DreamOption {
	return func(d *domain.Dream) {
		d.Status = s
	}
}

// NewTestDream builds an active custom-category dream with sane defaults.
func NewTestDream(title string, opts ...DreamOption) *domain.Dream {
	now := time.Now().UTC()
	d := &domain.Dream{
		ID:        uuid.New().String(),
		Title:     title,
		Category:  domain.CategoryCustom,
		Status:    domain.DreamActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewTestMilestone builds a milestone attached to the given dream.
func NewTestMilestone(dreamID, title string, seq int) *domain.Milestone {
	now := time.Now().UTC()
	return &domain.Milestone{
		ID:        uuid.New().String(),
		DreamID:   dreamID,
		Title:     title,
		Seq:       seq,
		Status:    domain.MilestoneUpcoming,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestTask builds a todo task attached to the given dream.
func NewTestTask(dreamID, title string) *domain.Task {
	now := time.Now().UTC()
	return &domain.Task{
		ID:        uuid.New().String(),
		DreamID:   dreamID,
		Title:     title,
		Assignee:  domain.AssigneeBoth,
		Status:    domain.TaskTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FullAnswers returns a complete answer set with every question at value.
func FullAnswers(value int) map[string]int {
	m := make(map[string]int, len(domain.QuizQuestions))
	for _, q := range domain.QuizQuestions {
		m[q.ID] = value
	}
	return m
}
