package mapping

import (
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/campusfunds/event_funds_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var volunteer, receipt *string
	if d.Volunteer != "" {
		volunteer = &d.Volunteer
	}
	if d.Receipt != "" {
		receipt = &d.Receipt
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		CashbookID:    d.CashbookID,
		Date:          d.Date,
		Description:   d.Description,
		Type:          models.TransactionType(d.Type),
		Amount:        d.Amount,
		Category:      d.Category,
		Volunteer:     volunteer,
		Receipt:       receipt,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	volunteer, receipt := "", ""
	if m.Volunteer != nil {
		volunteer = *m.Volunteer
	}
	if m.Receipt != nil {
		receipt = *m.Receipt
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		CashbookID:    m.CashbookID,
		Date:          m.Date,
		Description:   m.Description,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Category:      m.Category,
		Volunteer:     volunteer,
		Receipt:       receipt,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain
// Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
