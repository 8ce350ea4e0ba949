package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/togetherforward/forward/internal/db"
	"github.com/togetherforward/forward/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo over SQLite.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

const taskColumns = `id, dream_id, milestone_id, title, assignee, due_date, status, completed_at, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var milestoneID any
	if t.MilestoneID != "" {
		milestoneID = t.MilestoneID
	}
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.DreamID,
		milestoneID,
		t.Title,
		string(t.Assignee),
		nullableTimeToString(t.DueDate, dateLayout),
		string(t.Status),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) ListByDream(ctx context.Context, dreamID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE dream_id = ? ORDER BY created_at`
	return r.queryTasks(ctx, query, dreamID)
}

func (r *SQLiteTaskRepo) ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE milestone_id = ? ORDER BY created_at`
	return r.queryTasks(ctx, query, milestoneID)
}

func (r *SQLiteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET milestone_id = ?, title = ?, assignee = ?, due_date = ?,
		status = ?, completed_at = ?, updated_at = ? WHERE id = ?`
	var milestoneID any
	if t.MilestoneID != "" {
		milestoneID = t.MilestoneID
	}
	_, err := r.db.ExecContext(ctx, query,
		milestoneID,
		t.Title,
		string(t.Assignee),
		nullableTimeToString(t.DueDate, dateLayout),
		string(t.Status),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var milestoneID, dueDate, completedAt sql.NullString
	var assignee, status string
	var createdAt, updatedAt string

	err := row.Scan(
		&t.ID, &t.DreamID, &milestoneID, &t.Title, &assignee, &dueDate,
		&status, &completedAt, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.MilestoneID = milestoneID.String
	t.Assignee = domain.TaskAssignee(assignee)
	t.Status = domain.TaskStatus(status)
	t.DueDate = parseNullableTime(dueDate, dateLayout)
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}
