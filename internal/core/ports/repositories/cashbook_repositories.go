package repositories

import (
	"context"
	"time"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CashbookReader defines read operations for cashbook data.
type CashbookReader interface {
	// FindCashbookByID retrieves a single cashbook by its primary key.
	FindCashbookByID(ctx context.Context, cashbookID string) (*domain.Cashbook, error)

	// ListCashbooks retrieves the full cashbook collection.
	ListCashbooks(ctx context.Context) ([]domain.Cashbook, error)
}

// CashbookWriter defines write operations for cashbook data.
type CashbookWriter interface {
	// SaveCashbook inserts a cashbook, or updates its aggregates when the id
	// already exists (used by seeding and migration).
	SaveCashbook(ctx context.Context, cashbook domain.Cashbook) error

	// UpdateCashbookTotalsTx overwrites the three aggregates and the update
	// timestamp inside the given database transaction.
	UpdateCashbookTotalsTx(ctx context.Context, tx pgx.Tx, cashbookID string, fundsRaised, expenses, remainingBalance decimal.Decimal, updatedAt time.Time) error

	// LockCashbookTx takes a row lock on the cashbook inside the given
	// transaction, serializing concurrent recomputations per cashbook.
	LockCashbookTx(ctx context.Context, tx pgx.Tx, cashbookID string) error

	// DeleteCashbook removes a cashbook by its primary key. Fails when events
	// or transactions still reference it (restrict delete policy).
	DeleteCashbook(ctx context.Context, cashbookID string) error
}

// CashbookRepositoryFacade combines all cashbook-related repository interfaces.
type CashbookRepositoryFacade interface {
	CashbookReader
	CashbookWriter
}

// CashbookRepositoryWithTx extends CashbookRepositoryFacade with transaction
// capabilities.
type CashbookRepositoryWithTx interface {
	CashbookRepositoryFacade
	TransactionManager
}
