package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrBudgetNotFound = errors.New("budget not found")

// Budget holds the monthly budget and optional per-category limits for one
// account.
type Budget struct {
	AccountID     string                      `json:"account_id" bson:"account_id"`
	MonthlyBudget decimal.Decimal             `json:"monthly_budget" bson:"monthly_budget"`
	Categories    map[Category]decimal.Decimal `json:"categories" bson:"categories"`
}

// EmptyBudget is the default before any budget has been saved.
func EmptyBudget(accountID string) Budget {
	return Budget{
		AccountID:     accountID,
		MonthlyBudget: decimal.Zero,
		Categories:    map[Category]decimal.Decimal{},
	}
}
