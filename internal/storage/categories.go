package storage

import (
	"context"
	"fmt"

	"paytrack/internal/ledger"
	"paytrack/internal/model"
)

// LoadCategories returns the label lists for all category dimensions. A
// database with no labels at all is bootstrapped with the default lists.
func (s *SQLiteStorage) LoadCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT category_id, label
		FROM category_labels
		ORDER BY category_id, position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query category labels: %w", err)
	}
	defer rows.Close()

	labels := make(map[model.CategoryID][]string)
	total := 0
	for rows.Next() {
		var id model.CategoryID
		var label string
		if err := rows.Scan(&id, &label); err != nil {
			return nil, fmt.Errorf("failed to scan category label: %w", err)
		}
		labels[id] = append(labels[id], label)
		total++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category labels: %w", err)
	}

	if total == 0 {
		defaults := ledger.DefaultCategories()
		if err := s.SaveCategories(ctx, defaults); err != nil {
			return nil, fmt.Errorf("failed to seed default categories: %w", err)
		}
		return defaults, nil
	}

	categories := make([]model.Category, 0, 3)
	for _, id := range model.CategoryIDs() {
		categories = append(categories, model.Category{
			ID:     id,
			Name:   id.DisplayName(),
			Labels: labels[id],
		})
	}
	return categories, nil
}

// SaveCategories replaces the persisted label lists with the snapshot.
func (s *SQLiteStorage) SaveCategories(ctx context.Context, categories []model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM category_labels`); err != nil {
		return fmt.Errorf("failed to clear category labels: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO category_labels (category_id, label, position)
		VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range categories {
		for i, label := range c.Labels {
			if _, err := stmt.ExecContext(ctx, string(c.ID), label, i); err != nil {
				return fmt.Errorf("failed to insert label %q: %w", label, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category labels: %w", err)
	}
	return nil
}
