package services

import (
	"context"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/campusfunds/event_funds_app/internal/dto"
)

// FundSvcFacade is the fund/ledger side of the read facade plus the
// transaction write path and aggregate recomputation.
type FundSvcFacade interface {
	// GetCashbookByID always bypasses the cache (single-row fetch).
	GetCashbookByID(ctx context.Context, cashbookID string) (*domain.Cashbook, error)

	// GetCashbooksByIDs serves from the cached full cashbook collection when
	// fresh, filtered by membership; otherwise fetches all cashbooks, caches
	// them and returns the requested subset. An empty id list returns the
	// full collection.
	GetCashbooksByIDs(ctx context.Context, cashbookIDs []string) ([]domain.Cashbook, error)

	// GetFundData composes a cashbook fetch with a fresh transaction fetch;
	// never cached. Transaction ids come back in per-cashbook local form.
	GetFundData(ctx context.Context, cashbookID string) (*domain.FundData, error)

	// CreateTransaction inserts a transaction keyed "{cashbookID}-{seq}" and
	// recomputes the cashbook aggregates in the same database transaction,
	// then invalidates the cache.
	CreateTransaction(ctx context.Context, cashbookID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// RecomputeCashbook rebuilds the three aggregates from the full
	// transaction set. Idempotent; used for on-demand drift repair.
	RecomputeCashbook(ctx context.Context, cashbookID string) (*domain.Cashbook, error)

	// CreateCashbook registers a new empty cashbook (or reseeds aggregates on
	// an existing id) and invalidates the cache.
	CreateCashbook(ctx context.Context, req dto.CreateCashbookRequest) (*domain.Cashbook, error)

	// DeleteCashbook removes a cashbook that no events or transactions
	// reference, then invalidates the cache.
	DeleteCashbook(ctx context.Context, cashbookID string) error
}
