package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusfunds/event_funds_app/internal/apperrors"
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	portsrepo "github.com/campusfunds/event_funds_app/internal/core/ports/repositories"
	"github.com/campusfunds/event_funds_app/internal/models"
	"github.com/campusfunds/event_funds_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, cashbook_id, date, description, type, amount, category, volunteer, receipt, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransactionRow(row pgx.CollectableRow) (models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.CashbookID,
		&txn.Date,
		&txn.Description,
		&txn.Type,
		&txn.Amount,
		&txn.Category,
		&txn.Volunteer,
		&txn.Receipt,
		&txn.CreatedAt,
	)
	return txn, err
}

// ListTransactionsByCashbook retrieves all transactions of one cashbook,
// newest first. Always a fresh read; this collection is never cached.
func (r *PgxTransactionRepository) ListTransactionsByCashbook(ctx context.Context, cashbookID string) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE cashbook_id = $1 ORDER BY date DESC;`, transactionColumns)

	rows, err := r.Pool.Query(ctx, query, cashbookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for cashbook %s: %w", cashbookID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, scanTransactionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// ListTransactionsByCashbookTx is the same read inside a database transaction,
// so aggregate recomputation sums exactly the rows the transaction sees.
func (r *PgxTransactionRepository) ListTransactionsByCashbookTx(ctx context.Context, tx pgx.Tx, cashbookID string) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE cashbook_id = $1 ORDER BY date DESC;`, transactionColumns)

	rows, err := tx.Query(ctx, query, cashbookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for cashbook %s: %w", cashbookID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, scanTransactionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// NextLocalSeqTx derives the next per-cashbook sequence number from the
// highest existing "{cashbookID}-{seq}" key. The caller must already hold the
// cashbook row lock so two inserts cannot pick the same number.
func (r *PgxTransactionRepository) NextLocalSeqTx(ctx context.Context, tx pgx.Tx, cashbookID string) (int64, error) {
	query := `
		SELECT COALESCE(MAX(CAST(substring(id FROM char_length(cashbook_id) + 2) AS BIGINT)), 0) + 1
		FROM transactions
		WHERE cashbook_id = $1;
	`

	var seq int64
	if err := tx.QueryRow(ctx, query, cashbookID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to allocate transaction sequence for cashbook %s: %w", cashbookID, err)
	}
	return seq, nil
}

// InsertTransactionTx persists a new transaction row in the given database
// transaction.
func (r *PgxTransactionRepository) InsertTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (id, cashbook_id, date, description, type, amount, category, volunteer, receipt, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.CashbookID,
		modelTxn.Date,
		modelTxn.Description,
		modelTxn.Type,
		modelTxn.Amount,
		modelTxn.Category,
		modelTxn.Volunteer,
		modelTxn.Receipt,
		modelTxn.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation on the composed key
				return apperrors.ErrDuplicate
			}
			if pgErr.Code == "23503" { // foreign_key_violation: unknown cashbook
				return apperrors.ErrNotFound
			}
		}
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}
