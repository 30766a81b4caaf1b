package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"paytrack/internal/config"
	"paytrack/internal/ledger"
	"paytrack/internal/model"
	"paytrack/internal/service"
	"paytrack/internal/storage"
)

// app bundles the persistence layer and the loaded in-memory stores for the
// duration of one command.
type app struct {
	store      service.Storage
	payments   *ledger.PaymentStore
	categories *ledger.CategoryStore
	users      *ledger.UserStore
}

// openApp opens the database, runs pending migrations, and loads all three
// collections into their stores.
func openApp(ctx context.Context) (*app, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = fmt.Sprintf("%s/.local/share/paytrack/paytrack.db", home)
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	payments, err := store.LoadPayments(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	categories, err := store.LoadCategories(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	users, err := store.LoadUsers(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	return &app{
		store:      store,
		payments:   ledger.NewPaymentStore(payments),
		categories: ledger.NewCategoryStore(categories),
		users:      ledger.NewUserStore(users),
	}, nil
}

// close releases the database handle, logging rather than failing the command.
func (a *app) close() {
	if err := a.store.Close(); err != nil {
		slog.Warn("failed to close storage", "error", err)
	}
}

// actingUser authenticates the configured credentials against the account
// store and returns the acting user for permission checks.
func (a *app) actingUser() (model.User, error) {
	username := viper.GetString("auth.username")
	password := viper.GetString("auth.password")
	if username == "" {
		return model.User{}, fmt.Errorf("no acting user configured; set --user/--password or auth.username in the config")
	}
	return a.users.Authenticate(username, password)
}

func (a *app) savePayments(ctx context.Context) error {
	if err := a.store.SavePayments(ctx, a.payments.Payments()); err != nil {
		return fmt.Errorf("failed to save payments: %w", err)
	}
	return nil
}

func (a *app) saveCategories(ctx context.Context) error {
	if err := a.store.SaveCategories(ctx, a.categories.Categories()); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}

func (a *app) saveUsers(ctx context.Context) error {
	if err := a.store.SaveUsers(ctx, a.users.Users()); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// promptString reads one line from stdin after showing a styled prompt.
func promptString(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptYesNo asks a yes/no question and returns true only on an explicit yes.
func promptYesNo(prompt string) (bool, error) {
	answer, err := promptString(prompt + " [y/N] ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
