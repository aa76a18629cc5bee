package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// TransactionDraft carries all data needed to record a new transaction.
type TransactionDraft struct {
	Type     domain.TransactionType
	Amount   decimal.Decimal
	Category domain.Category
	Reason   string
	Date     time.Time
	Document *domain.Document // optional
}

// AccountSummary is the dashboard view of one account: the stored balance
// plus income/expense totals over the full log.
type AccountSummary struct {
	Balance          domain.Balance
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	TransactionCount int
}

// LedgerService defines the use-case operations over one account's ledger.
// Mutating operations take the acting session and check its capabilities
// before touching any state.
type LedgerService interface {
	// GetBalance returns the stored balance, or the zero-balance default
	// when no record exists yet. Never fails for an unknown record.
	GetBalance(ctx context.Context, accountID string) (domain.Balance, error)

	// ListTransactions returns the log in recording order; empty when none.
	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// RecordTransaction validates the draft, enforces the overdraft guard,
	// appends to the log, updates the balance and emits one audit event.
	// Returns the new balance.
	RecordTransaction(ctx context.Context, actor domain.Session, accountID string, draft TransactionDraft) (domain.Balance, error)

	// Summary aggregates the dashboard metrics for one account.
	Summary(ctx context.Context, accountID string) (*AccountSummary, error)

	// Reconcile recomputes the balance from scratch by summing the log and
	// persists it, repairing any divergence left by a partial write.
	Reconcile(ctx context.Context, actor domain.Session, accountID string) (domain.Balance, error)
}
