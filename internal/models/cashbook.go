package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cashbook represents a row of the cashbooks table.
// Note: aggregate columns are NUMERIC and must use a precise decimal type
// like github.com/shopspring/decimal.
type Cashbook struct {
	CashbookID       string          `json:"id"` // Primary Key, e.g. CB2024001
	FundsRaised      decimal.Decimal `json:"funds_raised"`
	Expenses         decimal.Decimal `json:"expenses"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	LastUpdatedAt    time.Time       `json:"updated_at"`
}
