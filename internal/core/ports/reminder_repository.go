package ports

import (
	"context"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// ReminderRepository persists per-account payment reminders.
type ReminderRepository interface {
	Append(ctx context.Context, reminder *domain.Reminder) error
	// List returns the account's reminders in insertion order; empty slice
	// when none exist.
	List(ctx context.Context, accountID string) ([]domain.Reminder, error)
}
