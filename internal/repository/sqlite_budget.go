package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/togetherforward/forward/internal/db"
	"github.com/togetherforward/forward/internal/domain"
)

// SQLiteBudgetRepo implements BudgetRepo over SQLite.
type SQLiteBudgetRepo struct {
	db db.DBTX
}

func NewSQLiteBudgetRepo(dbtx db.DBTX) *SQLiteBudgetRepo {
	return &SQLiteBudgetRepo{db: dbtx}
}

const budgetColumns = `id, dream_id, name, planned_cents, spent_cents, seq, created_at, updated_at`

func (r *SQLiteBudgetRepo) Create(ctx context.Context, c *domain.BudgetCategory) error {
	query := `INSERT INTO budget_categories (` + budgetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.DreamID,
		c.Name,
		c.PlannedCents,
		c.SpentCents,
		c.Seq,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting budget category: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetRepo) GetByID(ctx context.Context, id string) (*domain.BudgetCategory, error) {
	query := `SELECT ` + budgetColumns + ` FROM budget_categories WHERE id = ?`
	return scanBudgetCategory(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteBudgetRepo) ListByDream(ctx context.Context, dreamID string) ([]*domain.BudgetCategory, error) {
	query := `SELECT ` + budgetColumns + ` FROM budget_categories WHERE dream_id = ? ORDER BY seq, created_at`
	rows, err := r.db.QueryContext(ctx, query, dreamID)
	if err != nil {
		return nil, fmt.Errorf("listing budget categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.BudgetCategory
	for rows.Next() {
		c, err := scanBudgetCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget categories: %w", err)
	}
	return categories, nil
}

func (r *SQLiteBudgetRepo) Update(ctx context.Context, c *domain.BudgetCategory) error {
	query := `UPDATE budget_categories SET name = ?, planned_cents = ?, spent_cents = ?,
		seq = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.PlannedCents,
		c.SpentCents,
		c.Seq,
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating budget category: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM budget_categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting budget category: %w", err)
	}
	return nil
}

func (r *SQLiteBudgetRepo) DeleteByDream(ctx context.Context, dreamID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM budget_categories WHERE dream_id = ?`, dreamID); err != nil {
		return fmt.Errorf("deleting budget categories: %w", err)
	}
	return nil
}

func scanBudgetCategory(row rowScanner) (*domain.BudgetCategory, error) {
	var c domain.BudgetCategory
	var createdAt, updatedAt string

	err := row.Scan(
		&c.ID, &c.DreamID, &c.Name, &c.PlannedCents, &c.SpentCents, &c.Seq,
		&createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("budget category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning budget category: %w", err)
	}

	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &c, nil
}
