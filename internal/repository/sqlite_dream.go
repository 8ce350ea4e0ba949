package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/togetherforward/forward/internal/db"
	"github.com/togetherforward/forward/internal/domain"
)

// SQLiteDreamRepo implements DreamRepo over SQLite.
type SQLiteDreamRepo struct {
	db db.DBTX
}

func NewSQLiteDreamRepo(dbtx db.DBTX) *SQLiteDreamRepo {
	return &SQLiteDreamRepo{db: dbtx}
}

const dreamColumns = `id, owner_id, partner_id, title, category, target_date,
	target_amount_cents, saved_amount_cents, monthly_contrib_cents,
	status, archived_at, created_at, updated_at`

func (r *SQLiteDreamRepo) Create(ctx context.Context, d *domain.Dream) error {
	query := `INSERT INTO dreams (` + dreamColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.OwnerID,
		d.PartnerID,
		d.Title,
		string(d.Category),
		nullableTimeToString(d.TargetDate, dateLayout),
		d.TargetAmountCents,
		d.SavedAmountCents,
		d.MonthlyContribCents,
		string(d.Status),
		nullableTimeToString(d.ArchivedAt, time.RFC3339),
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting dream: %w", err)
	}
	return nil
}

func (r *SQLiteDreamRepo) GetByID(ctx context.Context, id string) (*domain.Dream, error) {
	query := `SELECT ` + dreamColumns + ` FROM dreams WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanDream(row)
}

func (r *SQLiteDreamRepo) ListByOwner(ctx context.Context, ownerID string, includeArchived bool) ([]*domain.Dream, error) {
	query := `SELECT ` + dreamColumns + ` FROM dreams WHERE owner_id = ?`
	if !includeArchived {
		query += ` AND archived_at IS NULL`
	}
	query += ` ORDER BY created_at`
	return r.queryDreams(ctx, query, ownerID)
}

func (r *SQLiteDreamRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Dream, error) {
	query := `SELECT ` + dreamColumns + ` FROM dreams`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY created_at`
	return r.queryDreams(ctx, query)
}

func (r *SQLiteDreamRepo) queryDreams(ctx context.Context, query string, args ...any) ([]*domain.Dream, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing dreams: %w", err)
	}
	defer rows.Close()

	var dreams []*domain.Dream
	for rows.Next() {
		d, err := scanDreamFromRows(rows)
		if err != nil {
			return nil, err
		}
		dreams = append(dreams, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dreams: %w", err)
	}
	return dreams, nil
}

func (r *SQLiteDreamRepo) Update(ctx context.Context, d *domain.Dream) error {
	query := `UPDATE dreams SET owner_id = ?, partner_id = ?, title = ?, category = ?,
		target_date = ?, target_amount_cents = ?, saved_amount_cents = ?,
		monthly_contrib_cents = ?, status = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		d.OwnerID,
		d.PartnerID,
		d.Title,
		string(d.Category),
		nullableTimeToString(d.TargetDate, dateLayout),
		d.TargetAmountCents,
		d.SavedAmountCents,
		d.MonthlyContribCents,
		string(d.Status),
		d.UpdatedAt.Format(time.RFC3339),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating dream: %w", err)
	}
	return nil
}

func (r *SQLiteDreamRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	query := `UPDATE dreams SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, now, now, id); err != nil {
		return fmt.Errorf("archiving dream: %w", err)
	}
	return nil
}

func (r *SQLiteDreamRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dreams WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting dream: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDream(row rowScanner) (*domain.Dream, error) {
	var d domain.Dream
	var category, status string
	var targetDate, archivedAt sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&d.ID, &d.OwnerID, &d.PartnerID, &d.Title, &category, &targetDate,
		&d.TargetAmountCents, &d.SavedAmountCents, &d.MonthlyContribCents,
		&status, &archivedAt, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("dream not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning dream: %w", err)
	}

	d.Category = domain.DreamCategory(category)
	d.Status = domain.DreamStatus(status)
	d.TargetDate = parseNullableTime(targetDate, dateLayout)
	d.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)
	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	d.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &d, nil
}

func scanDreamFromRows(rows *sql.Rows) (*domain.Dream, error) {
	return scanDream(rows)
}
