package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// ReminderDraft carries the fields for a new payment reminder.
type ReminderDraft struct {
	Title     string
	Amount    decimal.Decimal
	DueDate   time.Time
	Frequency domain.Frequency
}

// ReminderService manages per-account payment reminders.
type ReminderService interface {
	List(ctx context.Context, accountID string) ([]domain.Reminder, error)
	// Add validates well-formedness only, appends and emits one audit event.
	Add(ctx context.Context, actor domain.Session, accountID string, draft ReminderDraft) (*domain.Reminder, error)
}
