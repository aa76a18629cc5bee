package file

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

// LedgerRepository persists the transaction log and balance record as
// transactions_<account>.json and balance_<account>.json.
type LedgerRepository struct {
	store *Store
}

func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

type fileTransaction struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	Amount     decimal.Decimal  `json:"amount"`
	Category   string           `json:"category"`
	Reason     string           `json:"reason"`
	Date       string           `json:"date"`
	Document   *domain.Document `json:"receipt,omitempty"`
	RecordedAt string           `json:"recorded_at"`
}

type fileBalance struct {
	Current     decimal.Decimal `json:"current_balance"`
	LastUpdated string          `json:"last_updated"`
}

func transactionsFile(accountID string) string { return "transactions_" + accountID + ".json" }
func balanceFile(accountID string) string      { return "balance_" + accountID + ".json" }

func (r *LedgerRepository) AppendTransaction(_ context.Context, tx *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	name := transactionsFile(tx.AccountID)
	var records []fileTransaction
	if _, err := r.store.readJSON(name, &records); err != nil {
		return err
	}

	records = append(records, fileTransaction{
		ID:         tx.ID,
		Type:       string(tx.Type),
		Amount:     tx.Amount,
		Category:   string(tx.Category),
		Reason:     tx.Reason,
		Date:       formatTime(tx.Date),
		Document:   tx.Document,
		RecordedAt: formatTime(tx.RecordedAt),
	})
	return r.store.writeJSON(name, records)
}

func (r *LedgerRepository) ListTransactions(_ context.Context, accountID string) ([]domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var records []fileTransaction
	if _, err := r.store.readJSON(transactionsFile(accountID), &records); err != nil {
		return nil, err
	}

	txs := make([]domain.Transaction, 0, len(records))
	for _, rec := range records {
		date, err := parseTime(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", rec.ID, err)
		}
		recordedAt, err := parseTime(rec.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", rec.ID, err)
		}
		txs = append(txs, domain.Transaction{
			ID:         rec.ID,
			AccountID:  accountID,
			Type:       domain.TransactionType(rec.Type),
			Amount:     rec.Amount,
			Category:   domain.Category(rec.Category),
			Reason:     rec.Reason,
			Date:       date,
			Document:   rec.Document,
			RecordedAt: recordedAt,
		})
	}
	return txs, nil
}

func (r *LedgerRepository) GetBalance(_ context.Context, accountID string) (*domain.Balance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rec fileBalance
	found, err := r.store.readJSON(balanceFile(accountID), &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrBalanceNotFound
	}

	updated, err := parseTime(rec.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &domain.Balance{
		AccountID:   accountID,
		Current:     rec.Current,
		LastUpdated: updated,
	}, nil
}

func (r *LedgerRepository) PutBalance(_ context.Context, balance domain.Balance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.writeJSON(balanceFile(balance.AccountID), fileBalance{
		Current:     balance.Current,
		LastUpdated: formatTime(balance.LastUpdated),
	})
}
