package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/togetherforward/forward/internal/db"
	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
)

// KeyGuestDream is the local storage slot for a dream drafted before
// sign-up.
const KeyGuestDream = "guest_dream"

// guestStagePayload is the persisted shape of a staged dream.
type guestStagePayload struct {
	Title               string     `json:"title"`
	Category            string     `json:"category"`
	TargetDate          *time.Time `json:"target_date,omitempty"`
	TargetAmountCents   int64      `json:"target_amount_cents"`
	MonthlyContribCents int64      `json:"monthly_contrib_cents"`
	StagedAt            time.Time  `json:"staged_at"`
}

type guestDreamService struct {
	kv  repository.LocalKV
	uow db.UnitOfWork
}

func NewGuestDreamService(kv repository.LocalKV, uow db.UnitOfWork) GuestDreamService {
	return &guestDreamService{kv: kv, uow: uow}
}

// Stage parks a dream draft in local storage until an account exists.
func (s *guestDreamService) Stage(ctx context.Context, d *domain.Dream) error {
	if err := d.Validate(); err != nil {
		return err
	}
	payload := guestStagePayload{
		Title:               d.Title,
		Category:            string(d.Category),
		TargetDate:          d.TargetDate,
		TargetAmountCents:   d.TargetAmountCents,
		MonthlyContribCents: d.MonthlyContribCents,
		StagedAt:            time.Now().UTC(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding staged dream: %w", err)
	}
	return s.kv.Set(ctx, KeyGuestDream, string(data))
}

func (s *guestDreamService) Load(ctx context.Context) (*domain.Dream, error) {
	raw, ok, err := s.kv.Get(ctx, KeyGuestDream)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var payload guestStagePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decoding staged dream: %w", err)
	}
	return &domain.Dream{
		Title:               payload.Title,
		Category:            domain.DreamCategory(payload.Category),
		TargetDate:          payload.TargetDate,
		TargetAmountCents:   payload.TargetAmountCents,
		MonthlyContribCents: payload.MonthlyContribCents,
		Status:              domain.DreamDraft,
	}, nil
}

// HasValidGuestDream reports whether a well-formed staged dream is waiting.
// Corrupt payloads report false and are left in place for inspection.
func (s *guestDreamService) HasValidGuestDream(ctx context.Context) bool {
	d, err := s.Load(ctx)
	if err != nil || d == nil {
		return false
	}
	return d.Validate() == nil
}

// AttachToAccount re-homes the staged dream under the new owner and clears
// the staging slot, all in one transaction. The staging survives a failed
// attach for a later retry.
func (s *guestDreamService) AttachToAccount(ctx context.Context, ownerID string) (string, error) {
	d, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	if d == nil {
		return "", fmt.Errorf("no staged guest dream")
	}

	now := time.Now().UTC()
	d.ID = uuid.New().String()
	d.OwnerID = ownerID
	d.Status = domain.DreamActive
	d.CreatedAt = now
	d.UpdatedAt = now
	if err := d.Validate(); err != nil {
		return "", err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteDreamRepo(tx).Create(ctx, d); err != nil {
			return fmt.Errorf("creating dream: %w", err)
		}
		if err := repository.NewSQLiteLocalKV(tx).Delete(ctx, KeyGuestDream); err != nil {
			return fmt.Errorf("clearing staged dream: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return d.ID, nil
}

func (s *guestDreamService) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, KeyGuestDream)
}
