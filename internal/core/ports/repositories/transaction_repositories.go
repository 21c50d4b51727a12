package repositories

import (
	"context"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transaction data. Reads are
// never cached: aggregate recomputation must always see fresh rows.
type TransactionReader interface {
	// ListTransactionsByCashbook retrieves all transactions for one cashbook,
	// ordered by date descending.
	ListTransactionsByCashbook(ctx context.Context, cashbookID string) ([]domain.Transaction, error)

	// ListTransactionsByCashbookTx is the same read scoped to a database
	// transaction, so a recomputation sees the rows it is summing.
	ListTransactionsByCashbookTx(ctx context.Context, tx pgx.Tx, cashbookID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// NextLocalSeqTx returns the next free per-cashbook sequence number,
	// derived from the highest existing "{cashbookID}-{seq}" key.
	NextLocalSeqTx(ctx context.Context, tx pgx.Tx, cashbookID string) (int64, error)

	// InsertTransactionTx persists a new transaction row inside the given
	// database transaction.
	InsertTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository
// interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with
// transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
