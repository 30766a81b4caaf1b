package storage

import (
	"context"
	"fmt"
	"log/slog"

	"paytrack/internal/model"
)

// LoadPayments returns the full payment collection in insertion order.
func (s *SQLiteStorage) LoadPayments(ctx context.Context) ([]model.Payment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, due_date, check_number, bank, company, business_group, description, amount, status
		FROM payments
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.DueDate, &p.CheckNumber, &p.Bank, &p.Company,
			&p.BusinessGroup, &p.Description, &p.Amount, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	slog.Debug("loaded payments", "count", len(payments))
	return payments, nil
}

// SavePayments replaces the persisted payment collection with the snapshot.
func (s *SQLiteStorage) SavePayments(ctx context.Context, payments []model.Payment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePayments(payments); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM payments`); err != nil {
		return fmt.Errorf("failed to clear payments: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO payments (id, due_date, check_number, bank, company, business_group, description, amount, status, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range payments {
		if _, err := stmt.ExecContext(ctx, p.ID, p.DueDate, p.CheckNumber, p.Bank, p.Company,
			p.BusinessGroup, p.Description, p.Amount, p.Status, i); err != nil {
			return fmt.Errorf("failed to insert payment %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payments: %w", err)
	}

	slog.Debug("saved payments", "count", len(payments))
	return nil
}
