package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// BudgetService manages the per-account budget record.
type BudgetService struct {
	repo  ports.BudgetRepository
	audit ports.AuditService
	log   zerolog.Logger
}

func NewBudgetService(repo ports.BudgetRepository, audit ports.AuditService, log zerolog.Logger) *BudgetService {
	return &BudgetService{repo: repo, audit: audit, log: log}
}

func (s *BudgetService) Get(ctx context.Context, accountID string) (domain.Budget, error) {
	budget, err := s.repo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return domain.EmptyBudget(accountID), nil
		}
		return domain.Budget{}, fmt.Errorf("get budget: %w", err)
	}
	return *budget, nil
}

func (s *BudgetService) Put(ctx context.Context, actor domain.Session, budget domain.Budget) error {
	if err := authorize(actor, domain.CapEdit); err != nil {
		return err
	}
	if budget.MonthlyBudget.IsNegative() {
		return domain.ErrNegativeAmount
	}
	for category, limit := range budget.Categories {
		if !category.Valid() {
			return fmt.Errorf("%w: category %q", domain.ErrMalformedField, category)
		}
		if limit.IsNegative() {
			return domain.ErrNegativeAmount
		}
	}

	if err := s.repo.Put(ctx, budget); err != nil {
		return fmt.Errorf("put budget: %w", err)
	}

	s.audit.Record(ctx, actor, domain.AuditUpdateBudget, "Updated budget for "+budget.AccountID)
	return nil
}
