package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/repository"
)

// inviteTTL is how long an invite code stays acceptable.
const inviteTTL = 14 * 24 * time.Hour

type inviteService struct {
	invites repository.InviteRepo
	dreams  repository.DreamRepo
}

func NewInviteService(invites repository.InviteRepo, dreams repository.DreamRepo) InviteService {
	return &inviteService{invites: invites, dreams: dreams}
}

func (s *inviteService) Create(ctx context.Context, kind domain.InviteKind, dreamID, inviterID string) (*domain.Invite, error) {
	switch kind {
	case domain.InviteDream:
		if dreamID == "" {
			return nil, fmt.Errorf("a dream invite needs a dream id")
		}
		if _, err := s.dreams.GetByID(ctx, dreamID); err != nil {
			return nil, fmt.Errorf("looking up dream: %w", err)
		}
	case domain.InvitePartner:
		dreamID = ""
	default:
		return nil, fmt.Errorf("unknown invite kind %q", kind)
	}

	code, err := newJoinCode()
	if err != nil {
		return nil, fmt.Errorf("generating invite code: %w", err)
	}
	invite := &domain.Invite{
		ID:        uuid.New().String(),
		Code:      code,
		DreamID:   dreamID,
		InviterID: inviterID,
		Kind:      kind,
		Status:    domain.InvitePending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.invites.Create(ctx, invite); err != nil {
		return nil, err
	}
	return invite, nil
}

// Accept consumes a pending invite. For dream invites the accepter becomes
// the dream's partner.
func (s *inviteService) Accept(ctx context.Context, code string, accepterID string) (*domain.Invite, error) {
	invite, err := s.invites.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("no invite with code %s: %w", code, err)
	}

	now := time.Now().UTC()
	if invite.Expired(now, inviteTTL) {
		invite.Status = domain.InviteExpired
		_ = s.invites.Update(ctx, invite)
		return nil, fmt.Errorf("invite %s has expired", invite.Code)
	}
	if invite.Status != domain.InvitePending {
		return nil, fmt.Errorf("invite %s is already %s", invite.Code, invite.Status)
	}

	if invite.Kind == domain.InviteDream {
		dream, err := s.dreams.GetByID(ctx, invite.DreamID)
		if err != nil {
			return nil, fmt.Errorf("looking up invited dream: %w", err)
		}
		dream.PartnerID = accepterID
		dream.UpdatedAt = now
		if err := s.dreams.Update(ctx, dream); err != nil {
			return nil, fmt.Errorf("attaching partner to dream: %w", err)
		}
	}

	invite.Status = domain.InviteAccepted
	invite.AcceptedAt = &now
	if err := s.invites.Update(ctx, invite); err != nil {
		return nil, err
	}
	return invite, nil
}
