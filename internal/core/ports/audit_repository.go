package ports

import (
	"context"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// AuditRepository persists the single global append-only audit log.
type AuditRepository interface {
	Append(ctx context.Context, entry domain.AuditEntry) error
	// List returns all entries in insertion order.
	List(ctx context.Context) ([]domain.AuditEntry, error)
}
