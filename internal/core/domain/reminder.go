package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is how often a payment reminder recurs.
type Frequency string

const (
	FrequencyOneTime   Frequency = "One-time"
	FrequencyMonthly   Frequency = "Monthly"
	FrequencyQuarterly Frequency = "Quarterly"
	FrequencyYearly    Frequency = "Yearly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOneTime, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// Reminder is a passive per-account payment reminder. No firing logic exists;
// it is informational only.
type Reminder struct {
	ID        string          `json:"id" bson:"_id"`
	AccountID string          `json:"account_id" bson:"account_id"`
	Title     string          `json:"title" bson:"title"`
	Amount    decimal.Decimal `json:"amount" bson:"amount"`
	DueDate   time.Time       `json:"due_date" bson:"due_date"`
	Frequency Frequency       `json:"frequency" bson:"frequency"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}
