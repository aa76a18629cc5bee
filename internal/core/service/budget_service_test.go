package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

type stubBudgetRepo struct {
	budgets map[string]domain.Budget
}

func newStubBudgetRepo() *stubBudgetRepo {
	return &stubBudgetRepo{budgets: make(map[string]domain.Budget)}
}

func (r *stubBudgetRepo) Get(_ context.Context, accountID string) (*domain.Budget, error) {
	budget, ok := r.budgets[accountID]
	if !ok {
		return nil, domain.ErrBudgetNotFound
	}
	return &budget, nil
}

func (r *stubBudgetRepo) Put(_ context.Context, budget domain.Budget) error {
	r.budgets[budget.AccountID] = budget
	return nil
}

func TestBudgetService_Get_Default(t *testing.T) {
	svc := NewBudgetService(newStubBudgetRepo(), &stubAudit{}, zerolog.Nop())

	budget, err := svc.Get(context.Background(), "HBL")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !budget.MonthlyBudget.IsZero() {
		t.Fatalf("expected zero default budget, got %s", budget.MonthlyBudget)
	}
}

func TestBudgetService_PutAndGet(t *testing.T) {
	repo := newStubBudgetRepo()
	audit := &stubAudit{}
	svc := NewBudgetService(repo, audit, zerolog.Nop())
	ctx := context.Background()

	budget := domain.Budget{
		AccountID:     "HBL",
		MonthlyBudget: decimal.NewFromInt(20000),
		Categories: map[domain.Category]decimal.Decimal{
			domain.CategorySupplies: decimal.NewFromInt(5000),
		},
	}
	if err := svc.Put(ctx, adminSession(), budget); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := svc.Get(ctx, "HBL")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.MonthlyBudget.Equal(budget.MonthlyBudget) {
		t.Fatalf("monthly budget = %s, want %s", got.MonthlyBudget, budget.MonthlyBudget)
	}

	if len(audit.entries) != 1 || audit.entries[0].Action != domain.AuditUpdateBudget {
		t.Fatalf("expected an update-budget audit entry, got %+v", audit.entries)
	}
}

func TestBudgetService_Put_Invalid(t *testing.T) {
	svc := NewBudgetService(newStubBudgetRepo(), &stubAudit{}, zerolog.Nop())
	ctx := context.Background()

	budget := domain.Budget{AccountID: "HBL", MonthlyBudget: decimal.NewFromInt(-1)}
	if err := svc.Put(ctx, adminSession(), budget); !errors.Is(err, domain.ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}

	budget = domain.Budget{
		AccountID:     "HBL",
		MonthlyBudget: decimal.NewFromInt(1000),
		Categories: map[domain.Category]decimal.Decimal{
			domain.Category("Travel"): decimal.NewFromInt(10),
		},
	}
	if err := svc.Put(ctx, adminSession(), budget); !errors.Is(err, domain.ErrMalformedField) {
		t.Fatalf("expected ErrMalformedField, got %v", err)
	}

	if err := svc.Put(ctx, viewerSession(), domain.Budget{AccountID: "EasyPaisa"}); !errors.Is(err, domain.ErrMissingCapability) {
		t.Fatalf("expected ErrMissingCapability, got %v", err)
	}
}
