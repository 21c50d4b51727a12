package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cashbook is the ledger record holding fund aggregates for one or more
// events. The three aggregates are derived from the cashbook's transaction
// set and recomputed on every transaction insert; they are never updated
// incrementally. Intended invariant:
//
//	RemainingBalance == FundsRaised - Expenses
//
// Note: Amounts use github.com/shopspring/decimal so that monetary sums stay
// exact; do not replace with float64.
type Cashbook struct {
	CashbookID       string          `json:"cashbookID"` // opaque token, e.g. CB2024001
	FundsRaised      decimal.Decimal `json:"fundsRaised"`
	Expenses         decimal.Decimal `json:"expenses"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}
