package file

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// BudgetRepository persists the budget record as budget_<account>.json.
type BudgetRepository struct {
	store *Store
}

func NewBudgetRepository(store *Store) *BudgetRepository {
	return &BudgetRepository{store: store}
}

type fileBudget struct {
	MonthlyBudget decimal.Decimal            `json:"monthly_budget"`
	Categories    map[string]decimal.Decimal `json:"categories"`
}

func budgetFile(accountID string) string { return "budget_" + accountID + ".json" }

func (r *BudgetRepository) Get(_ context.Context, accountID string) (*domain.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rec fileBudget
	found, err := r.store.readJSON(budgetFile(accountID), &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrBudgetNotFound
	}

	categories := make(map[domain.Category]decimal.Decimal, len(rec.Categories))
	for name, limit := range rec.Categories {
		categories[domain.Category(name)] = limit
	}
	return &domain.Budget{
		AccountID:     accountID,
		MonthlyBudget: rec.MonthlyBudget,
		Categories:    categories,
	}, nil
}

func (r *BudgetRepository) Put(_ context.Context, budget domain.Budget) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	categories := make(map[string]decimal.Decimal, len(budget.Categories))
	for name, limit := range budget.Categories {
		categories[string(name)] = limit
	}
	return r.store.writeJSON(budgetFile(budget.AccountID), fileBudget{
		MonthlyBudget: budget.MonthlyBudget,
		Categories:    categories,
	})
}
