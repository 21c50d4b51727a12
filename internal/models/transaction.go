package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the type column of the transactions table.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction represents a row of the transactions table. The primary key is
// "{cashbook_id}-{local_seq}" so a per-cashbook entry number stays recoverable
// from the key itself.
type Transaction struct {
	TransactionID string          `json:"id"`          // Primary Key
	CashbookID    string          `json:"cashbook_id"` // FK -> cashbooks.id (Not Null)
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Positive value
	Category      string          `json:"category"`
	Volunteer     *string         `json:"volunteer"` // Nullable
	Receipt       *string         `json:"receipt"`   // Nullable
	CreatedAt     time.Time       `json:"created_at"`
}
