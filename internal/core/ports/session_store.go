package ports

import (
	"context"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// SessionStore tracks live authenticated sessions. Implementations must
// return domain.ErrSessionNotFound for unknown or already-deleted ids.
type SessionStore interface {
	Put(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
