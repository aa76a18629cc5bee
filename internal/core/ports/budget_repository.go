package ports

import (
	"context"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// BudgetRepository persists the per-account budget record.
type BudgetRepository interface {
	// Get returns the stored budget, or domain.ErrBudgetNotFound when none
	// has been saved yet.
	Get(ctx context.Context, accountID string) (*domain.Budget, error)
	Put(ctx context.Context, budget domain.Budget) error
}
