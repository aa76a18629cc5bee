package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// AuditService writes the global append-only trail. Append failures are
// absorbed: the triggering operation's primary effect always stands.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
	now  func() time.Time
	// onAppendError is called after a failed append, for metrics. May be nil.
	onAppendError func()
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log, now: time.Now}
}

// WithAppendErrorHook installs a callback fired on every failed append.
func (s *AuditService) WithAppendErrorHook(hook func()) *AuditService {
	s.onAppendError = hook
	return s
}

func (s *AuditService) Record(ctx context.Context, actor domain.Session, action, details string) {
	entry := domain.AuditEntry{
		Timestamp: s.now().UTC(),
		AccountID: actor.AccountID,
		Role:      actor.Role,
		Action:    action,
		Details:   details,
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("audit append failed")
		if s.onAppendError != nil {
			s.onAppendError()
		}
	}
}

func (s *AuditService) List(ctx context.Context, actor domain.Session) ([]domain.AuditEntry, error) {
	if err := authorize(actor, domain.CapViewAudit); err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	return entries, nil
}
