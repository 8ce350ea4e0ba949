package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/togetherforward/forward/internal/db"
	"github.com/togetherforward/forward/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo over SQLite. The couple profile
// is a singleton row; Get on an empty table returns defaults.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(dbtx db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: dbtx}
}

const profileID = "singleton"

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.CoupleProfile, error) {
	query := `SELECT id, display_name, partner_name, savings_capacity_cents, currency
		FROM couple_profile WHERE id = ?`
	var p domain.CoupleProfile
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&p.ID, &p.DisplayName, &p.PartnerName, &p.SavingsCapacityCents, &p.Currency,
	)
	if err == sql.ErrNoRows {
		return &domain.CoupleProfile{ID: profileID, Currency: domain.DefaultCurrency}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading couple profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.CoupleProfile) error {
	p.ID = profileID
	if p.Currency == "" {
		p.Currency = domain.DefaultCurrency
	}
	query := `INSERT INTO couple_profile (id, display_name, partner_name, savings_capacity_cents, currency)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			partner_name = excluded.partner_name,
			savings_capacity_cents = excluded.savings_capacity_cents,
			currency = excluded.currency`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.DisplayName, p.PartnerName, p.SavingsCapacityCents, p.Currency,
	)
	if err != nil {
		return fmt.Errorf("upserting couple profile: %w", err)
	}
	return nil
}
