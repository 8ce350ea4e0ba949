package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicate-column errors from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS dreams (
		id                    TEXT PRIMARY KEY,
		owner_id              TEXT NOT NULL DEFAULT '',
		partner_id            TEXT NOT NULL DEFAULT '',
		title                 TEXT NOT NULL,
		category              TEXT NOT NULL
		                      CHECK(category IN ('wedding','home','travel','finance','family','custom')),
		target_date           TEXT,
		target_amount_cents   INTEGER NOT NULL DEFAULT 0,
		saved_amount_cents    INTEGER NOT NULL DEFAULT 0,
		monthly_contrib_cents INTEGER NOT NULL DEFAULT 0,
		status                TEXT NOT NULL DEFAULT 'draft'
		                      CHECK(status IN ('draft','active','paused','achieved','archived')),
		archived_at           TEXT,
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dreams_owner ON dreams(owner_id)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id                  TEXT PRIMARY KEY,
		dream_id            TEXT NOT NULL REFERENCES dreams(id) ON DELETE CASCADE,
		title               TEXT NOT NULL,
		seq                 INTEGER NOT NULL DEFAULT 0,
		due_date            TEXT,
		target_amount_cents INTEGER NOT NULL DEFAULT 0,
		status              TEXT NOT NULL DEFAULT 'upcoming'
		                    CHECK(status IN ('upcoming','in_progress','done')),
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_milestones_dream ON milestones(dream_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		dream_id     TEXT NOT NULL REFERENCES dreams(id) ON DELETE CASCADE,
		milestone_id TEXT REFERENCES milestones(id) ON DELETE SET NULL,
		title        TEXT NOT NULL,
		assignee     TEXT NOT NULL DEFAULT 'both'
		             CHECK(assignee IN ('me','partner','both')),
		due_date     TEXT,
		status       TEXT NOT NULL DEFAULT 'todo'
		             CHECK(status IN ('todo','in_progress','done')),
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_dream ON tasks(dream_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_milestone ON tasks(milestone_id)`,

	`CREATE TABLE IF NOT EXISTS budget_categories (
		id            TEXT PRIMARY KEY,
		dream_id      TEXT NOT NULL REFERENCES dreams(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		planned_cents INTEGER NOT NULL DEFAULT 0,
		spent_cents   INTEGER NOT NULL DEFAULT 0,
		seq           INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_budget_dream ON budget_categories(dream_id)`,

	`CREATE TABLE IF NOT EXISTS assessment_sessions (
		id         TEXT PRIMARY KEY,
		dream_id   TEXT NOT NULL DEFAULT '',
		join_code  TEXT NOT NULL UNIQUE,
		status     TEXT NOT NULL DEFAULT 'open'
		           CHECK(status IN ('open','partner_joined','scored')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assessment_answers (
		session_id  TEXT NOT NULL REFERENCES assessment_sessions(id) ON DELETE CASCADE,
		partner     TEXT NOT NULL CHECK(partner IN ('a','b')),
		question_id TEXT NOT NULL,
		value       INTEGER NOT NULL CHECK(value BETWEEN 1 AND 5),
		created_at  TEXT NOT NULL,
		PRIMARY KEY (session_id, partner, question_id)
	)`,

	`CREATE TABLE IF NOT EXISTS couple_profile (
		id                     TEXT PRIMARY KEY CHECK(id = 'singleton'),
		display_name           TEXT NOT NULL DEFAULT '',
		partner_name           TEXT NOT NULL DEFAULT '',
		savings_capacity_cents INTEGER NOT NULL DEFAULT 0,
		currency               TEXT NOT NULL DEFAULT 'USD'
	)`,

	`CREATE TABLE IF NOT EXISTS invites (
		id          TEXT PRIMARY KEY,
		code        TEXT NOT NULL UNIQUE,
		dream_id    TEXT NOT NULL DEFAULT '',
		inviter_id  TEXT NOT NULL DEFAULT '',
		kind        TEXT NOT NULL CHECK(kind IN ('dream','partner')),
		status      TEXT NOT NULL DEFAULT 'pending'
		            CHECK(status IN ('pending','accepted','expired')),
		created_at  TEXT NOT NULL,
		accepted_at TEXT
	)`,

	// local_kv is the app's stand-in for browser local storage: pending
	// invite codes and the staged guest dream live here.
	`CREATE TABLE IF NOT EXISTS local_kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
