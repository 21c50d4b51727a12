package mapping

import (
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/campusfunds/event_funds_app/internal/models"
)

// ToModelCashbook converts a domain Cashbook to a model Cashbook.
func ToModelCashbook(d domain.Cashbook) models.Cashbook {
	return models.Cashbook{
		CashbookID:       d.CashbookID,
		FundsRaised:      d.FundsRaised,
		Expenses:         d.Expenses,
		RemainingBalance: d.RemainingBalance,
		LastUpdatedAt:    d.LastUpdatedAt,
	}
}

// ToDomainCashbook converts a model Cashbook to a domain Cashbook.
func ToDomainCashbook(m models.Cashbook) domain.Cashbook {
	return domain.Cashbook{
		CashbookID:       m.CashbookID,
		FundsRaised:      m.FundsRaised,
		Expenses:         m.Expenses,
		RemainingBalance: m.RemainingBalance,
		LastUpdatedAt:    m.LastUpdatedAt,
	}
}

// ToDomainCashbookSlice converts a slice of model Cashbooks to domain Cashbooks.
func ToDomainCashbookSlice(ms []models.Cashbook) []domain.Cashbook {
	ds := make([]domain.Cashbook, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashbook(m)
	}
	return ds
}
