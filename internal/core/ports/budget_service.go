package ports

import (
	"context"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// BudgetService manages the per-account budget record.
type BudgetService interface {
	// Get returns the stored budget or the empty default.
	Get(ctx context.Context, accountID string) (domain.Budget, error)
	// Put replaces the budget and emits one audit event.
	Put(ctx context.Context, actor domain.Session, budget domain.Budget) error
}
