package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction raises or spends funds.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is a single dated income or expense entry belonging to exactly
// one Cashbook. Its primary key is the combination of the cashbook id and a
// per-cashbook local sequence number, joined as "{cashbookID}-{localSeq}",
// which keeps the key globally unique while the local number stays
// human-meaningful.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // e.g. "CB2024001-3"
	CashbookID    string          `json:"cashbookID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // positive
	Category      string          `json:"category"`
	Volunteer     string          `json:"volunteer"` // optional: responsible person
	Receipt       string          `json:"receipt"`   // optional: receipt reference
	CreatedAt     time.Time       `json:"createdAt"`
}

// ComposeTransactionID builds the global primary key from a cashbook id and a
// local sequence number.
func ComposeTransactionID(cashbookID string, localSeq int64) string {
	return fmt.Sprintf("%s-%d", cashbookID, localSeq)
}

// LocalTransactionID recovers the per-cashbook local id by stripping the
// "{cashbookID}-" prefix from a global transaction id. Ids that do not carry
// the prefix are returned unchanged.
func LocalTransactionID(transactionID, cashbookID string) string {
	return strings.TrimPrefix(transactionID, cashbookID+"-")
}
