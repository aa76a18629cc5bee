package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a ledger movement.
type TransactionType string

const (
	CashIn  TransactionType = "Cash In"
	CashOut TransactionType = "Cash Out"
)

// Category classifies a transaction. The set is fixed.
type Category string

const (
	CategoryTuition     Category = "Tuition"
	CategorySupplies    Category = "Supplies"
	CategoryMaintenance Category = "Maintenance"
	CategoryOther       Category = "Other"
)

var ErrNegativeAmount = errors.New("amount must not be negative")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrMalformedField = errors.New("malformed field")

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == CashIn || t == CashOut
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryTuition, CategorySupplies, CategoryMaintenance, CategoryOther:
		return true
	}
	return false
}

// Document is an optional attachment (receipt) on a transaction, stored
// inline as base64.
type Document struct {
	Filename    string `json:"filename" bson:"filename"`
	ContentType string `json:"content_type" bson:"content_type"`
	Data        string `json:"data" bson:"data"`
}

// Transaction is a single immutable ledger movement. Once recorded it is
// never edited or removed.
type Transaction struct {
	ID         string          `json:"id" bson:"_id"`
	AccountID  string          `json:"account_id" bson:"account_id"`
	Type       TransactionType `json:"type" bson:"type"`
	Amount     decimal.Decimal `json:"amount" bson:"amount"`
	Category   Category        `json:"category" bson:"category"`
	Reason     string          `json:"reason" bson:"reason"`
	Date       time.Time       `json:"date" bson:"date"`
	Document   *Document       `json:"document,omitempty" bson:"document,omitempty"`
	RecordedAt time.Time       `json:"recorded_at" bson:"recorded_at"`
}

// Signed returns the amount with Cash Out negated, the form summed by
// reconciliation.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == CashOut {
		return t.Amount.Neg()
	}
	return t.Amount
}
