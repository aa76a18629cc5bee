package ports

import (
	"context"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// AuditService writes and reads the global audit trail.
type AuditService interface {
	// Record appends one entry. Failures are absorbed: they are logged and
	// counted but never propagate, so the triggering operation's primary
	// effect stands.
	Record(ctx context.Context, actor domain.Session, action, details string)

	// List returns the full trail in insertion order. Requires the
	// view_audit capability on the acting session.
	List(ctx context.Context, actor domain.Session) ([]domain.AuditEntry, error)
}
