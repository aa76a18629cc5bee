package file

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// ReminderRepository persists reminders as reminders_<account>.json.
type ReminderRepository struct {
	store *Store
}

func NewReminderRepository(store *Store) *ReminderRepository {
	return &ReminderRepository{store: store}
}

type fileReminder struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"due_date"`
	Frequency string          `json:"frequency"`
	CreatedAt string          `json:"created_at"`
}

func remindersFile(accountID string) string { return "reminders_" + accountID + ".json" }

func (r *ReminderRepository) Append(_ context.Context, reminder *domain.Reminder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	name := remindersFile(reminder.AccountID)
	var records []fileReminder
	if _, err := r.store.readJSON(name, &records); err != nil {
		return err
	}

	records = append(records, fileReminder{
		ID:        reminder.ID,
		Title:     reminder.Title,
		Amount:    reminder.Amount,
		DueDate:   formatTime(reminder.DueDate),
		Frequency: string(reminder.Frequency),
		CreatedAt: formatTime(reminder.CreatedAt),
	})
	return r.store.writeJSON(name, records)
}

func (r *ReminderRepository) List(_ context.Context, accountID string) ([]domain.Reminder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var records []fileReminder
	if _, err := r.store.readJSON(remindersFile(accountID), &records); err != nil {
		return nil, err
	}

	reminders := make([]domain.Reminder, 0, len(records))
	for _, rec := range records {
		due, err := parseTime(rec.DueDate)
		if err != nil {
			return nil, fmt.Errorf("reminder %s: %w", rec.ID, err)
		}
		created, err := parseTime(rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("reminder %s: %w", rec.ID, err)
		}
		reminders = append(reminders, domain.Reminder{
			ID:        rec.ID,
			AccountID: accountID,
			Title:     rec.Title,
			Amount:    rec.Amount,
			DueDate:   due,
			Frequency: domain.Frequency(rec.Frequency),
			CreatedAt: created,
		})
	}
	return reminders, nil
}
