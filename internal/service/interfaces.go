// Package service defines the contracts between the engine and its
// collaborators.
package service

import (
	"context"

	"paytrack/internal/model"
)

// Storage is the persistence collaborator: a plain load/save contract over
// whole collections. The engine mutates in memory; callers persist snapshots
// through this interface.
type Storage interface {
	LoadPayments(ctx context.Context) ([]model.Payment, error)
	SavePayments(ctx context.Context, payments []model.Payment) error

	LoadCategories(ctx context.Context) ([]model.Category, error)
	SaveCategories(ctx context.Context, categories []model.Category) error

	LoadUsers(ctx context.Context) ([]model.User, error)
	SaveUsers(ctx context.Context, users []model.User) error

	Migrate(ctx context.Context) error
	Close() error
}
