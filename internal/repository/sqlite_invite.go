package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/togetherforward/forward/internal/db"
	"github.com/togetherforward/forward/internal/domain"
)

// SQLiteInviteRepo implements InviteRepo over SQLite.
type SQLiteInviteRepo struct {
	db db.DBTX
}

func NewSQLiteInviteRepo(dbtx db.DBTX) *SQLiteInviteRepo {
	return &SQLiteInviteRepo{db: dbtx}
}

func (r *SQLiteInviteRepo) Create(ctx context.Context, i *domain.Invite) error {
	query := `INSERT INTO invites (id, code, dream_id, inviter_id, kind, status, created_at, accepted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.Code,
		i.DreamID,
		i.InviterID,
		string(i.Kind),
		string(i.Status),
		i.CreatedAt.Format(time.RFC3339),
		nullableTimeToString(i.AcceptedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting invite: %w", err)
	}
	return nil
}

func (r *SQLiteInviteRepo) GetByCode(ctx context.Context, code string) (*domain.Invite, error) {
	query := `SELECT id, code, dream_id, inviter_id, kind, status, created_at, accepted_at
		FROM invites WHERE UPPER(code) = UPPER(?)`
	var i domain.Invite
	var kind, status, createdAt string
	var acceptedAt sql.NullString
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&i.ID, &i.Code, &i.DreamID, &i.InviterID, &kind, &status, &createdAt, &acceptedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("invite not found for code %q", code)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning invite: %w", err)
	}
	i.Kind = domain.InviteKind(kind)
	i.Status = domain.InviteStatus(status)
	i.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	i.AcceptedAt = parseNullableTime(acceptedAt, time.RFC3339)
	return &i, nil
}

func (r *SQLiteInviteRepo) Update(ctx context.Context, i *domain.Invite) error {
	query := `UPDATE invites SET dream_id = ?, status = ?, accepted_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		i.DreamID,
		string(i.Status),
		nullableTimeToString(i.AcceptedAt, time.RFC3339),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invite: %w", err)
	}
	return nil
}
