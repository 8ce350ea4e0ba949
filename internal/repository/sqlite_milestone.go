package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/togetherforward/forward/internal/db"
	"github.com/togetherforward/forward/internal/domain"
)

// SQLiteMilestoneRepo implements MilestoneRepo over SQLite.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

func NewSQLiteMilestoneRepo(dbtx db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: dbtx}
}

const milestoneColumns = `id, dream_id, title, seq, due_date, target_amount_cents, status, created_at, updated_at`

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (` + milestoneColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.DreamID,
		m.Title,
		m.Seq,
		nullableTimeToString(m.DueDate, dateLayout),
		m.TargetAmountCents,
		string(m.Status),
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = ?`
	return scanMilestone(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteMilestoneRepo) ListByDream(ctx context.Context, dreamID string) ([]*domain.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE dream_id = ? ORDER BY seq, created_at`
	rows, err := r.db.QueryContext(ctx, query, dreamID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}

func (r *SQLiteMilestoneRepo) Update(ctx context.Context, m *domain.Milestone) error {
	query := `UPDATE milestones SET title = ?, seq = ?, due_date = ?,
		target_amount_cents = ?, status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		m.Title,
		m.Seq,
		nullableTimeToString(m.DueDate, dateLayout),
		m.TargetAmountCents,
		string(m.Status),
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting milestone: %w", err)
	}
	return nil
}

func scanMilestone(row rowScanner) (*domain.Milestone, error) {
	var m domain.Milestone
	var status string
	var dueDate sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&m.ID, &m.DreamID, &m.Title, &m.Seq, &dueDate,
		&m.TargetAmountCents, &status, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("milestone not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}

	m.Status = domain.MilestoneStatus(status)
	m.DueDate = parseNullableTime(dueDate, dateLayout)
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &m, nil
}
