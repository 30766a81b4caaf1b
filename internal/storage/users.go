package storage

import (
	"context"
	"fmt"
	"log/slog"

	"paytrack/internal/ledger"
	"paytrack/internal/model"
)

// LoadUsers returns all accounts. An empty database is bootstrapped with a
// single administrative user holding every permission.
func (s *SQLiteStorage) LoadUsers(ctx context.Context) ([]model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, username, password,
			perm_add, perm_edit, perm_delete, perm_change_status, perm_manage_categories, perm_manage_users
		FROM users
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password,
			&u.Permissions.Add, &u.Permissions.Edit, &u.Permissions.Delete,
			&u.Permissions.ChangeStatus, &u.Permissions.ManageCategories,
			&u.Permissions.ManageUsers); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	if len(users) == 0 {
		admin := ledger.DefaultAdmin()
		if err := s.SaveUsers(ctx, []model.User{admin}); err != nil {
			return nil, fmt.Errorf("failed to seed admin user: %w", err)
		}
		slog.Info("seeded default admin user", "username", admin.Username)
		return []model.User{admin}, nil
	}

	return users, nil
}

// SaveUsers replaces the persisted account collection with the snapshot.
func (s *SQLiteStorage) SaveUsers(ctx context.Context, users []model.User) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUsers(users); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO users (id, username, password,
			perm_add, perm_edit, perm_delete, perm_change_status, perm_manage_categories, perm_manage_users, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, u := range users {
		if _, err := stmt.ExecContext(ctx, u.ID, u.Username, u.Password,
			u.Permissions.Add, u.Permissions.Edit, u.Permissions.Delete,
			u.Permissions.ChangeStatus, u.Permissions.ManageCategories,
			u.Permissions.ManageUsers, i); err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit users: %w", err)
	}
	return nil
}
