package ports

import (
	"context"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// LedgerRepository persists the per-account append-only transaction log and
// the derived balance record.
//
// The two records are separate writes; callers append the transaction first
// and put the balance second, so an interruption between the two leaves a
// state that reconciliation can repair by re-summing the log.
type LedgerRepository interface {
	// AppendTransaction adds one transaction to the end of the account's log.
	// Transactions are never mutated or removed.
	AppendTransaction(ctx context.Context, tx *domain.Transaction) error

	// ListTransactions returns the account's log in insertion order. An
	// account with no records yields an empty slice, not an error.
	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// GetBalance returns the stored balance record, or
	// domain.ErrBalanceNotFound when none exists yet.
	GetBalance(ctx context.Context, accountID string) (*domain.Balance, error)

	// PutBalance replaces the account's balance record.
	PutBalance(ctx context.Context, balance domain.Balance) error
}
