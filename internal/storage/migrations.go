package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application expects.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS payments (
					id TEXT PRIMARY KEY,
					due_date DATETIME NOT NULL,
					check_number TEXT NOT NULL,
					bank TEXT NOT NULL,
					company TEXT NOT NULL,
					business_group TEXT NOT NULL,
					description TEXT,
					amount REAL NOT NULL,
					status TEXT NOT NULL DEFAULT 'pending',
					position INTEGER NOT NULL
				)`,
				`CREATE INDEX idx_payments_due_date ON payments(due_date)`,
				`CREATE INDEX idx_payments_status ON payments(status)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Category label lists",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS category_labels (
					category_id TEXT NOT NULL,
					label TEXT NOT NULL,
					position INTEGER NOT NULL,
					PRIMARY KEY (category_id, label)
				)
			`)
			return err
		},
	},
	{
		Version:     3,
		Description: "User accounts and permissions",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS users (
					id TEXT PRIMARY KEY,
					username TEXT UNIQUE NOT NULL,
					password TEXT NOT NULL,
					perm_add INTEGER NOT NULL DEFAULT 0,
					perm_edit INTEGER NOT NULL DEFAULT 0,
					perm_delete INTEGER NOT NULL DEFAULT 0,
					perm_change_status INTEGER NOT NULL DEFAULT 0,
					perm_manage_categories INTEGER NOT NULL DEFAULT 0,
					perm_manage_users INTEGER NOT NULL DEFAULT 0,
					position INTEGER NOT NULL
				)
			`)
			return err
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_versions (
			version INTEGER PRIMARY KEY,
			description TEXT,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	var current int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", txErr)
		}

		if upErr := m.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, upErr)
		}

		if _, insErr := tx.Exec(`INSERT INTO schema_versions (version, description) VALUES (?, ?)`,
			m.Version, m.Description); insErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, insErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, commitErr)
		}

		slog.Info("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}
