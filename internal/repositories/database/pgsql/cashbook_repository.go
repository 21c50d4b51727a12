package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusfunds/event_funds_app/internal/apperrors"
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	portsrepo "github.com/campusfunds/event_funds_app/internal/core/ports/repositories"
	"github.com/campusfunds/event_funds_app/internal/models"
	"github.com/campusfunds/event_funds_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const cashbookColumns = `id, funds_raised, expenses, remaining_balance, updated_at`

type PgxCashbookRepository struct {
	BaseRepository
}

// newPgxCashbookRepository creates a new repository for cashbook data.
func newPgxCashbookRepository(pool *pgxpool.Pool) portsrepo.CashbookRepositoryWithTx {
	return &PgxCashbookRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CashbookRepositoryWithTx = (*PgxCashbookRepository)(nil)

func scanCashbookRow(row pgx.CollectableRow) (models.Cashbook, error) {
	var cb models.Cashbook
	err := row.Scan(
		&cb.CashbookID,
		&cb.FundsRaised,
		&cb.Expenses,
		&cb.RemainingBalance,
		&cb.LastUpdatedAt,
	)
	return cb, err
}

// FindCashbookByID retrieves a cashbook by its primary key.
func (r *PgxCashbookRepository) FindCashbookByID(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	query := fmt.Sprintf(`SELECT %s FROM cashbooks WHERE id = $1;`, cashbookColumns)

	rows, err := r.Pool.Query(ctx, query, cashbookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cashbook %s: %w", cashbookID, err)
	}
	defer rows.Close()

	modelCb, err := pgx.CollectOneRow(rows, scanCashbookRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cashbook by id %s: %w", cashbookID, err)
	}

	domainCb := mapping.ToDomainCashbook(modelCb)
	return &domainCb, nil
}

// ListCashbooks retrieves all cashbooks.
func (r *PgxCashbookRepository) ListCashbooks(ctx context.Context) ([]domain.Cashbook, error) {
	query := fmt.Sprintf(`SELECT %s FROM cashbooks ORDER BY id;`, cashbookColumns)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cashbooks: %w", err)
	}
	defer rows.Close()

	modelCbs, err := pgx.CollectRows(rows, scanCashbookRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan cashbooks: %w", err)
	}

	return mapping.ToDomainCashbookSlice(modelCbs), nil
}

// SaveCashbook inserts or updates a cashbook, keyed on the id. The upsert
// shape mirrors the bulk migration path, which writes aggregates directly.
func (r *PgxCashbookRepository) SaveCashbook(ctx context.Context, cashbook domain.Cashbook) error {
	modelCb := mapping.ToModelCashbook(cashbook)

	query := `
		INSERT INTO cashbooks (id, funds_raised, expenses, remaining_balance, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			funds_raised = EXCLUDED.funds_raised,
			expenses = EXCLUDED.expenses,
			remaining_balance = EXCLUDED.remaining_balance,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCb.CashbookID,
		modelCb.FundsRaised,
		modelCb.Expenses,
		modelCb.RemainingBalance,
		modelCb.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save cashbook %s: %w", modelCb.CashbookID, err)
	}
	return nil
}

// DeleteCashbook removes a cashbook. The foreign keys are declared RESTRICT,
// so a cashbook still referenced by events or transactions surfaces as
// ErrReferenced instead of cascading.
func (r *PgxCashbookRepository) DeleteCashbook(ctx context.Context, cashbookID string) error {
	query := `DELETE FROM cashbooks WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query, cashbookID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.ErrReferenced
		}
		return fmt.Errorf("failed to delete cashbook %s: %w", cashbookID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LockCashbookTx takes a FOR UPDATE row lock on the cashbook, serializing
// concurrent ledger writes per cashbook. Missing rows surface as ErrNotFound.
func (r *PgxCashbookRepository) LockCashbookTx(ctx context.Context, tx pgx.Tx, cashbookID string) error {
	query := `SELECT id FROM cashbooks WHERE id = $1 FOR UPDATE;`

	var id string
	err := tx.QueryRow(ctx, query, cashbookID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock cashbook %s: %w", cashbookID, err)
	}
	return nil
}

// UpdateCashbookTotalsTx overwrites the three aggregates unconditionally.
func (r *PgxCashbookRepository) UpdateCashbookTotalsTx(ctx context.Context, tx pgx.Tx, cashbookID string, fundsRaised, expenses, remainingBalance decimal.Decimal, updatedAt time.Time) error {
	query := `
		UPDATE cashbooks
		SET funds_raised = $2, expenses = $3, remaining_balance = $4, updated_at = $5
		WHERE id = $1;
	`

	tag, err := tx.Exec(ctx, query, cashbookID, fundsRaised, expenses, remainingBalance, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update cashbook totals for %s: %w", cashbookID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
