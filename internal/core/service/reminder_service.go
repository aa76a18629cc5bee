package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// ReminderService manages passive per-account payment reminders. No firing
// or due-date evaluation happens here.
type ReminderService struct {
	repo  ports.ReminderRepository
	audit ports.AuditService
	log   zerolog.Logger
	now   func() time.Time
}

func NewReminderService(repo ports.ReminderRepository, audit ports.AuditService, log zerolog.Logger) *ReminderService {
	return &ReminderService{repo: repo, audit: audit, log: log, now: time.Now}
}

func (s *ReminderService) List(ctx context.Context, accountID string) ([]domain.Reminder, error) {
	reminders, err := s.repo.List(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	if reminders == nil {
		reminders = []domain.Reminder{}
	}
	return reminders, nil
}

func (s *ReminderService) Add(ctx context.Context, actor domain.Session, accountID string, draft ports.ReminderDraft) (*domain.Reminder, error) {
	if err := authorize(actor, domain.CapAdd); err != nil {
		return nil, err
	}
	if draft.Title == "" {
		return nil, fmt.Errorf("%w: title", domain.ErrMalformedField)
	}
	if !draft.Frequency.Valid() {
		return nil, fmt.Errorf("%w: frequency", domain.ErrMalformedField)
	}
	if draft.Amount.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}

	reminder := &domain.Reminder{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Title:     draft.Title,
		Amount:    draft.Amount,
		DueDate:   draft.DueDate,
		Frequency: draft.Frequency,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Append(ctx, reminder); err != nil {
		return nil, fmt.Errorf("append reminder: %w", err)
	}

	s.audit.Record(ctx, actor, domain.AuditAddReminder, "Added reminder: "+reminder.Title)
	s.log.Info().Str("account_id", accountID).Str("title", reminder.Title).Msg("reminder added")

	return reminder, nil
}
