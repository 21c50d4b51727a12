package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusfunds/event_funds_app/internal/apperrors"
	"github.com/campusfunds/event_funds_app/internal/cache"
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	portsrepo "github.com/campusfunds/event_funds_app/internal/core/ports/repositories"
	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
	"github.com/campusfunds/event_funds_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// fundService is the ledger side of the read/query facade: cashbook reads,
// fund data composition, the transaction write path and aggregate
// recomputation. Aggregates are always rebuilt from the full transaction set
// of a cashbook, never adjusted incrementally; the insert and the write-back
// share one database transaction so no reader observes the half-applied
// state.
type fundService struct {
	BaseService
	cashbookRepo portsrepo.CashbookRepositoryWithTx
	txnRepo      portsrepo.TransactionRepositoryWithTx
	cache        *cache.Store
	now          func() time.Time
}

// FundServiceOption is a functional option for configuring the fund service
type FundServiceOption func(*fundService)

// WithFundClock overrides the service clock (used by tests).
func WithFundClock(now func() time.Time) FundServiceOption {
	return func(s *fundService) {
		s.now = now
	}
}

// NewFundService creates a new fund service with the provided options
func NewFundService(cashbookRepo portsrepo.CashbookRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryWithTx, cacheStore *cache.Store, options ...FundServiceOption) portssvc.FundSvcFacade {
	svc := &fundService{
		cashbookRepo: cashbookRepo,
		txnRepo:      txnRepo,
		cache:        cacheStore,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure fundService implements the FundSvcFacade interface
var _ portssvc.FundSvcFacade = (*fundService)(nil)

// sumTransactions partitions a transaction set by type and returns the three
// aggregates. Sums stay in decimal arithmetic end to end.
func sumTransactions(txns []domain.Transaction) (fundsRaised, expenses, remainingBalance decimal.Decimal) {
	fundsRaised = decimal.Zero
	expenses = decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case domain.Income:
			fundsRaised = fundsRaised.Add(txn.Amount)
		case domain.Expense:
			expenses = expenses.Add(txn.Amount)
		}
	}
	return fundsRaised, expenses, fundsRaised.Sub(expenses)
}

// GetCashbookByID always bypasses the cache.
func (s *fundService) GetCashbookByID(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	cashbook, err := s.cashbookRepo.FindCashbookByID(ctx, cashbookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cashbook by id in service: %w", err)
	}
	return cashbook, nil
}

// GetCashbooksByIDs serves the requested subset from the cached full
// collection when fresh; otherwise it fetches and caches all cashbooks first.
func (s *fundService) GetCashbooksByIDs(ctx context.Context, cashbookIDs []string) ([]domain.Cashbook, error) {
	cashbooks, ok := s.cache.Cashbooks.Get()
	if !ok {
		var err error
		cashbooks, err = s.cashbookRepo.ListCashbooks(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch cashbooks")
			return nil, fmt.Errorf("failed to list cashbooks in service: %w", err)
		}
		if cashbooks == nil {
			cashbooks = []domain.Cashbook{}
		}
		s.cache.Cashbooks.Set(cashbooks)
	}

	if len(cashbookIDs) == 0 {
		return cashbooks, nil
	}

	wanted := make(map[string]struct{}, len(cashbookIDs))
	for _, id := range cashbookIDs {
		wanted[id] = struct{}{}
	}

	selected := make([]domain.Cashbook, 0, len(cashbookIDs))
	for _, cb := range cashbooks {
		if _, ok := wanted[cb.CashbookID]; ok {
			selected = append(selected, cb)
		}
	}
	return selected, nil
}

// GetFundData composes the cashbook aggregates with a fresh transaction
// fetch. Never cached; transaction ids are normalized to their per-cashbook
// local form.
func (s *fundService) GetFundData(ctx context.Context, cashbookID string) (*domain.FundData, error) {
	cashbook, err := s.cashbookRepo.FindCashbookByID(ctx, cashbookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fund data in service: %w", err)
	}

	txns, err := s.txnRepo.ListTransactionsByCashbook(ctx, cashbookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fund data in service: %w", err)
	}

	normalized := make([]domain.Transaction, len(txns))
	for i, txn := range txns {
		txn.TransactionID = domain.LocalTransactionID(txn.TransactionID, cashbookID)
		normalized[i] = txn
	}

	return &domain.FundData{
		FundsRaised:      cashbook.FundsRaised,
		Expenses:         cashbook.Expenses,
		RemainingBalance: cashbook.RemainingBalance,
		Transactions:     normalized,
	}, nil
}

// CreateTransaction records a ledger entry keyed "{cashbookID}-{seq}" and
// recomputes the cashbook aggregates, all inside one database transaction.
// The cache is invalidated only after the commit succeeds.
func (s *fundService) CreateTransaction(ctx context.Context, cashbookID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("transaction amount must be positive: %w", apperrors.ErrValidation)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction date %q: %w", req.Date, apperrors.ErrValidation)
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction creation: %w", err)
	}
	defer func() {
		_ = s.txnRepo.Rollback(ctx, tx)
	}()

	// Lock first: serializes sequence allocation and recomputation per
	// cashbook, and surfaces an unknown cashbook as not-found up front.
	if err := s.cashbookRepo.LockCashbookTx(ctx, tx, cashbookID); err != nil {
		return nil, fmt.Errorf("failed to lock cashbook %s: %w", cashbookID, err)
	}

	seq, err := s.txnRepo.NextLocalSeqTx(ctx, tx, cashbookID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate transaction id: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: domain.ComposeTransactionID(cashbookID, seq),
		CashbookID:    cashbookID,
		Date:          date,
		Description:   req.Description,
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Category:      req.Category,
		Volunteer:     req.Volunteer,
		Receipt:       req.Receipt,
		CreatedAt:     s.now(),
	}

	if err := s.txnRepo.InsertTransactionTx(ctx, tx, txn); err != nil {
		s.LogError(ctx, err, "Failed to insert transaction", slog.String("cashbook_id", cashbookID))
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}

	if err := s.recomputeTx(ctx, tx, cashbookID); err != nil {
		return nil, err
	}

	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction creation: %w", err)
	}

	s.cache.InvalidateAll()
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// CreateCashbook registers a cashbook, seeding its aggregates. The upsert
// keeps re-registration of a migrated ledger idempotent.
func (s *fundService) CreateCashbook(ctx context.Context, req dto.CreateCashbookRequest) (*domain.Cashbook, error) {
	seed := func(v *decimal.Decimal) decimal.Decimal {
		if v == nil {
			return decimal.Zero
		}
		return *v
	}

	cashbook := domain.Cashbook{
		CashbookID:       req.CashbookID,
		FundsRaised:      seed(req.FundsRaised),
		Expenses:         seed(req.Expenses),
		RemainingBalance: seed(req.RemainingBalance),
		LastUpdatedAt:    s.now(),
	}
	if cashbook.FundsRaised.IsNegative() || cashbook.Expenses.IsNegative() {
		return nil, fmt.Errorf("cashbook aggregates must not be negative: %w", apperrors.ErrValidation)
	}

	if err := s.cashbookRepo.SaveCashbook(ctx, cashbook); err != nil {
		s.LogError(ctx, err, "Failed to create cashbook", slog.String("cashbook_id", req.CashbookID))
		return nil, fmt.Errorf("failed to create cashbook in service: %w", err)
	}

	s.cache.InvalidateAll()
	s.LogInfo(ctx, "Cashbook created", slog.String("cashbook_id", cashbook.CashbookID))
	return &cashbook, nil
}

// DeleteCashbook removes an unreferenced cashbook and invalidates the cache.
func (s *fundService) DeleteCashbook(ctx context.Context, cashbookID string) error {
	if err := s.cashbookRepo.DeleteCashbook(ctx, cashbookID); err != nil {
		s.LogError(ctx, err, "Failed to delete cashbook", slog.String("cashbook_id", cashbookID))
		return fmt.Errorf("failed to delete cashbook in service: %w", err)
	}

	s.cache.InvalidateAll()
	s.LogInfo(ctx, "Cashbook deleted", slog.String("cashbook_id", cashbookID))
	return nil
}

// recomputeTx rebuilds the cashbook aggregates from the transaction rows
// visible inside tx and writes them back.
func (s *fundService) recomputeTx(ctx context.Context, tx pgx.Tx, cashbookID string) error {
	txns, err := s.txnRepo.ListTransactionsByCashbookTx(ctx, tx, cashbookID)
	if err != nil {
		return fmt.Errorf("failed to read transactions for recompute: %w", err)
	}

	fundsRaised, expenses, remainingBalance := sumTransactions(txns)
	if err := s.cashbookRepo.UpdateCashbookTotalsTx(ctx, tx, cashbookID, fundsRaised, expenses, remainingBalance, s.now()); err != nil {
		return fmt.Errorf("failed to write back cashbook totals: %w", err)
	}
	return nil
}

// RecomputeCashbook rebuilds the aggregates from the full transaction set.
// Idempotent: running it twice leaves the same totals. Used for on-demand
// drift repair after out-of-band writes.
func (s *fundService) RecomputeCashbook(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	tx, err := s.cashbookRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin recompute: %w", err)
	}
	defer func() {
		_ = s.cashbookRepo.Rollback(ctx, tx)
	}()

	if err := s.cashbookRepo.LockCashbookTx(ctx, tx, cashbookID); err != nil {
		return nil, fmt.Errorf("failed to lock cashbook %s: %w", cashbookID, err)
	}

	if err := s.recomputeTx(ctx, tx, cashbookID); err != nil {
		return nil, err
	}

	if err := s.cashbookRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit recompute: %w", err)
	}

	s.cache.InvalidateAll()

	cashbook, err := s.cashbookRepo.FindCashbookByID(ctx, cashbookID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload cashbook after recompute: %w", err)
	}
	s.LogInfo(ctx, "Cashbook recomputed",
		slog.String("cashbook_id", cashbookID),
		slog.String("remaining_balance", cashbook.RemainingBalance.String()))
	return cashbook, nil
}
