package store

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. Statements run one at a
// time; the pgx driver's extended protocol rejects multi-statement Exec.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT UNIQUE NOT NULL,
		role        TEXT NOT NULL,
		department  TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS attendance_records (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date        TEXT NOT NULL,
		status      TEXT NOT NULL,
		check_in    TEXT,
		check_out   TEXT,
		notes       TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attendance_user ON attendance_records(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance_records(date)`,
}
