package dto

import (
	"time"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/campusfunds/event_funds_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CashbookResponse defines the data returned for a cashbook. Display fields
// carry the fixed-locale rendering (INR, zero fraction digits) so clients do
// not reimplement money formatting.
type CashbookResponse struct {
	CashbookID       string          `json:"cashbookID"`
	FundsRaised      decimal.Decimal `json:"fundsRaised"`
	Expenses         decimal.Decimal `json:"expenses"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	FundsRaisedStr   string          `json:"fundsRaisedDisplay"`
	ExpensesStr      string          `json:"expensesDisplay"`
	BalanceStr       string          `json:"remainingBalanceDisplay"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ToCashbookResponse converts a domain Cashbook to a CashbookResponse DTO.
func ToCashbookResponse(cb *domain.Cashbook) CashbookResponse {
	return CashbookResponse{
		CashbookID:       cb.CashbookID,
		FundsRaised:      cb.FundsRaised,
		Expenses:         cb.Expenses,
		RemainingBalance: cb.RemainingBalance,
		FundsRaisedStr:   utils.FormatINR(cb.FundsRaised),
		ExpensesStr:      utils.FormatINR(cb.Expenses),
		BalanceStr:       utils.FormatINR(cb.RemainingBalance),
		UpdatedAt:        cb.LastUpdatedAt,
	}
}

// ToListCashbookResponse converts a slice of domain Cashbooks to DTOs.
func ToListCashbookResponse(cashbooks []domain.Cashbook) []CashbookResponse {
	res := make([]CashbookResponse, len(cashbooks))
	for i := range cashbooks {
		res[i] = ToCashbookResponse(&cashbooks[i])
	}
	return res
}

// CreateCashbookRequest defines the data needed to register a cashbook.
// Aggregates default to zero; non-zero values exist for seeding ledgers
// migrated from elsewhere.
type CreateCashbookRequest struct {
	CashbookID       string           `json:"cashbookID" binding:"required,cashbook_id"`
	FundsRaised      *decimal.Decimal `json:"fundsRaised"`
	Expenses         *decimal.Decimal `json:"expenses"`
	RemainingBalance *decimal.Decimal `json:"remainingBalance"`
}

// CreateTransactionRequest defines the data needed to record a ledger entry.
// Amount positivity is validated in the service so the error carries the
// validation taxonomy, not a binding failure.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Volunteer   string          `json:"volunteer"`
	Receipt     string          `json:"receipt"`
}

// TransactionResponse defines the data returned for a transaction. ID is the
// per-cashbook local form when the transaction is served through fund data.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	AmountStr   string          `json:"amountDisplay"`
	Category    string          `json:"category"`
	Volunteer   string          `json:"volunteer,omitempty"`
	Receipt     string          `json:"receipt,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to a DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.TransactionID,
		Date:        t.Date.Format("2006-01-02"),
		Description: t.Description,
		Type:        string(t.Type),
		Amount:      t.Amount,
		AmountStr:   utils.FormatINR(t.Amount),
		Category:    t.Category,
		Volunteer:   t.Volunteer,
		Receipt:     t.Receipt,
	}
}

// FundDataResponse is the composed cashbook + transactions view.
type FundDataResponse struct {
	FundsRaised      decimal.Decimal       `json:"fundsRaised"`
	Expenses         decimal.Decimal       `json:"expenses"`
	RemainingBalance decimal.Decimal       `json:"remainingBalance"`
	Transactions     []TransactionResponse `json:"transactions"`
}

// ToFundDataResponse converts domain FundData to a DTO.
func ToFundDataResponse(fd *domain.FundData) FundDataResponse {
	txns := make([]TransactionResponse, len(fd.Transactions))
	for i := range fd.Transactions {
		txns[i] = ToTransactionResponse(&fd.Transactions[i])
	}
	return FundDataResponse{
		FundsRaised:      fd.FundsRaised,
		Expenses:         fd.Expenses,
		RemainingBalance: fd.RemainingBalance,
		Transactions:     txns,
	}
}
