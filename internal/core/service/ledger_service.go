package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// LedgerService keeps one invariant: the stored balance always equals the
// signed sum of the account's transaction log after a successful mutation.
type LedgerService struct {
	repo  ports.LedgerRepository
	audit ports.AuditService
	log   zerolog.Logger
	now   func() time.Time
}

func NewLedgerService(repo ports.LedgerRepository, audit ports.AuditService, log zerolog.Logger) *LedgerService {
	return &LedgerService{repo: repo, audit: audit, log: log, now: time.Now}
}

// WithClock overrides the service clock. Intended for tests.
func (s *LedgerService) WithClock(now func() time.Time) *LedgerService {
	s.now = now
	return s
}

func (s *LedgerService) GetBalance(ctx context.Context, accountID string) (domain.Balance, error) {
	balance, err := s.repo.GetBalance(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrBalanceNotFound) {
			return domain.ZeroBalance(accountID, s.now().UTC()), nil
		}
		return domain.Balance{}, fmt.Errorf("get balance: %w", err)
	}
	return *balance, nil
}

func (s *LedgerService) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}

// RecordTransaction appends to the log first and updates the balance second,
// so an interruption between the two is always repairable via Reconcile.
func (s *LedgerService) RecordTransaction(ctx context.Context, actor domain.Session, accountID string, draft ports.TransactionDraft) (domain.Balance, error) {
	if err := authorize(actor, domain.CapAdd); err != nil {
		return domain.Balance{}, err
	}
	if err := validateDraft(draft); err != nil {
		return domain.Balance{}, err
	}

	balance, err := s.GetBalance(ctx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	if draft.Type == domain.CashOut && draft.Amount.GreaterThan(balance.Current) {
		return domain.Balance{}, domain.ErrInsufficientFunds
	}

	now := s.now().UTC()
	date := draft.Date
	if date.IsZero() {
		date = now
	}
	tx := &domain.Transaction{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		Type:       draft.Type,
		Amount:     draft.Amount,
		Category:   draft.Category,
		Reason:     draft.Reason,
		Date:       date,
		Document:   draft.Document,
		RecordedAt: now,
	}

	if err := s.repo.AppendTransaction(ctx, tx); err != nil {
		return domain.Balance{}, fmt.Errorf("append transaction: %w", err)
	}

	newBalance := domain.Balance{
		AccountID:   accountID,
		Current:     balance.Current.Add(tx.Signed()),
		LastUpdated: now,
	}
	if err := s.repo.PutBalance(ctx, newBalance); err != nil {
		// The log append is already durable; the stale balance record is
		// recoverable through Reconcile.
		s.log.Error().Err(err).Str("account_id", accountID).Msg("balance update failed after log append")
		return domain.Balance{}, fmt.Errorf("update balance: %w", err)
	}

	s.audit.Record(ctx, actor, domain.AuditAddTransaction,
		fmt.Sprintf("Added transaction: %s - %s, New Balance: %s", tx.Type, tx.Amount, newBalance.Current))

	s.log.Info().
		Str("account_id", accountID).
		Str("type", string(tx.Type)).
		Str("amount", tx.Amount.String()).
		Str("new_balance", newBalance.Current.String()).
		Msg("transaction recorded")

	return newBalance, nil
}

func (s *LedgerService) Summary(ctx context.Context, accountID string) (*ports.AccountSummary, error) {
	balance, err := s.GetBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}
	txs, err := s.ListTransactions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		if tx.Type == domain.CashIn {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}

	return &ports.AccountSummary{
		Balance:          balance,
		TotalIncome:      income,
		TotalExpense:     expense,
		TransactionCount: len(txs),
	}, nil
}

// Reconcile recomputes the balance by summing the full log and persists the
// result, repairing any divergence between the paired records.
func (s *LedgerService) Reconcile(ctx context.Context, actor domain.Session, accountID string) (domain.Balance, error) {
	if err := authorize(actor, domain.CapEdit); err != nil {
		return domain.Balance{}, err
	}

	txs, err := s.ListTransactions(ctx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Signed())
	}

	balance := domain.Balance{
		AccountID:   accountID,
		Current:     sum,
		LastUpdated: s.now().UTC(),
	}
	if err := s.repo.PutBalance(ctx, balance); err != nil {
		return domain.Balance{}, fmt.Errorf("put balance: %w", err)
	}

	s.audit.Record(ctx, actor, domain.AuditReconcileBalance,
		fmt.Sprintf("Reconciled balance for %s: %s over %d transactions", accountID, sum, len(txs)))

	return balance, nil
}

func validateDraft(draft ports.TransactionDraft) error {
	if draft.Amount.IsNegative() {
		return domain.ErrNegativeAmount
	}
	if !draft.Type.Valid() {
		return fmt.Errorf("%w: type", domain.ErrMalformedField)
	}
	if !draft.Category.Valid() {
		return fmt.Errorf("%w: category", domain.ErrMalformedField)
	}
	return nil
}

func authorize(actor domain.Session, capability domain.Capability) error {
	if !actor.Role.HasCapability(capability) {
		return fmt.Errorf("%w: %s", domain.ErrMissingCapability, capability)
	}
	return nil
}
