package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/togetherforward/forward/internal/db"
	"github.com/togetherforward/forward/internal/domain"
)

// SQLiteAssessmentRepo implements AssessmentRepo over SQLite.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssessmentRepo(dbtx db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: dbtx}
}

const sessionColumns = `id, dream_id, join_code, status, created_at, updated_at`

func (r *SQLiteAssessmentRepo) CreateSession(ctx context.Context, s *domain.AssessmentSession) error {
	query := `INSERT INTO assessment_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.DreamID,
		s.JoinCode,
		string(s.Status),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment session: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) GetSession(ctx context.Context, id string) (*domain.AssessmentSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM assessment_sessions WHERE id = ?`
	return scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteAssessmentRepo) GetSessionByJoinCode(ctx context.Context, code string) (*domain.AssessmentSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM assessment_sessions WHERE UPPER(join_code) = UPPER(?)`
	return scanSession(r.db.QueryRowContext(ctx, query, code))
}

func (r *SQLiteAssessmentRepo) UpdateSession(ctx context.Context, s *domain.AssessmentSession) error {
	query := `UPDATE assessment_sessions SET dream_id = ?, status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.DreamID,
		string(s.Status),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating assessment session: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) UpsertAnswer(ctx context.Context, a *domain.Answer) error {
	query := `INSERT INTO assessment_answers (session_id, partner, question_id, value, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_id, partner, question_id) DO UPDATE SET value = excluded.value`
	_, err := r.db.ExecContext(ctx, query,
		a.SessionID,
		string(a.Partner),
		a.QuestionID,
		a.Value,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting answer: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) ListAnswers(ctx context.Context, sessionID string, partner domain.Partner) ([]*domain.Answer, error) {
	query := `SELECT session_id, partner, question_id, value, created_at
		FROM assessment_answers WHERE session_id = ? AND partner = ? ORDER BY question_id`
	rows, err := r.db.QueryContext(ctx, query, sessionID, string(partner))
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()

	var answers []*domain.Answer
	for rows.Next() {
		var a domain.Answer
		var p, createdAt string
		if err := rows.Scan(&a.SessionID, &p, &a.QuestionID, &a.Value, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning answer: %w", err)
		}
		a.Partner = domain.Partner(p)
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		answers = append(answers, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return answers, nil
}

func scanSession(row rowScanner) (*domain.AssessmentSession, error) {
	var s domain.AssessmentSession
	var status, createdAt, updatedAt string

	err := row.Scan(&s.ID, &s.DreamID, &s.JoinCode, &status, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("assessment session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning assessment session: %w", err)
	}

	s.Status = domain.AssessmentStatus(status)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &s, nil
}
