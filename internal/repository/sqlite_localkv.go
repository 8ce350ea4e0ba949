package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/togetherforward/forward/internal/db"
)

// SQLiteLocalKV implements LocalKV over the local_kv table.
type SQLiteLocalKV struct {
	db db.DBTX
}

func NewSQLiteLocalKV(dbtx db.DBTX) *SQLiteLocalKV {
	return &SQLiteLocalKV{db: dbtx}
}

func (r *SQLiteLocalKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM local_kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading local kv key %q: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteLocalKV) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO local_kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing local kv key %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteLocalKV) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM local_kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting local kv key %q: %w", key, err)
	}
	return nil
}
