package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrBalanceNotFound = errors.New("balance not found")

// Balance is the derived running balance for one account. It is mutated only
// as a side effect of recording a transaction, and must always equal the
// signed sum of the account's transaction log.
type Balance struct {
	AccountID   string          `json:"account_id" bson:"account_id"`
	Current     decimal.Decimal `json:"current_balance" bson:"current_balance"`
	LastUpdated time.Time       `json:"last_updated" bson:"last_updated"`
}

// ZeroBalance is the default returned before any transaction exists.
func ZeroBalance(accountID string, now time.Time) Balance {
	return Balance{AccountID: accountID, Current: decimal.Zero, LastUpdated: now}
}
