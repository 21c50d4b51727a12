package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/campusfunds/event_funds_app/internal/apperrors"
	"github.com/campusfunds/event_funds_app/internal/cache"
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
	"github.com/campusfunds/event_funds_app/internal/core/services"
	"github.com/campusfunds/event_funds_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactionsByCashbook(ctx context.Context, cashbookID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByCashbookTx(ctx context.Context, tx pgx.Tx, cashbookID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, tx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) NextLocalSeqTx(ctx context.Context, tx pgx.Tx, cashbookID string) (int64, error) {
	args := m.Called(ctx, tx, cashbookID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) InsertTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Test Suite ---

type FundServiceTestSuite struct {
	suite.Suite
	mockCashbookRepo *MockCashbookRepository
	mockTxnRepo      *MockTransactionRepository
	clock            *fakeClock
	cacheStore       *cache.Store
	service          portssvc.FundSvcFacade
}

func (suite *FundServiceTestSuite) SetupTest() {
	suite.mockCashbookRepo = new(MockCashbookRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.clock = newFakeClock()
	suite.cacheStore = cache.NewStore(2*time.Minute, suite.clock.Now)
	suite.service = services.NewFundService(
		suite.mockCashbookRepo,
		suite.mockTxnRepo,
		suite.cacheStore,
		services.WithFundClock(suite.clock.Now),
	)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleCashbooks() []domain.Cashbook {
	return []domain.Cashbook{
		{CashbookID: "cb-tech-fest", FundsRaised: dec("125"), Expenses: dec("40"), RemainingBalance: dec("85")},
		{CashbookID: "cb-cultural-night", FundsRaised: dec("500"), Expenses: dec("200"), RemainingBalance: dec("300")},
	}
}

// --- Test Cases ---

func (suite *FundServiceTestSuite) TestGetCashbookByID_AlwaysFetches() {
	ctx := context.Background()
	expected := &domain.Cashbook{CashbookID: "cb-tech-fest", FundsRaised: dec("125")}

	suite.mockCashbookRepo.On("FindCashbookByID", ctx, "cb-tech-fest").Return(expected, nil).Twice()

	first, err := suite.service.GetCashbookByID(ctx, "cb-tech-fest")
	suite.Require().NoError(err)
	suite.True(first.FundsRaised.Equal(dec("125")))

	// No caching on single-cashbook reads.
	_, err = suite.service.GetCashbookByID(ctx, "cb-tech-fest")
	suite.Require().NoError(err)

	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestGetCashbooksByIDs_SubsetFromSingleFetch() {
	ctx := context.Background()

	suite.mockCashbookRepo.On("ListCashbooks", ctx).Return(sampleCashbooks(), nil).Once()

	selected, err := suite.service.GetCashbooksByIDs(ctx, []string{"cb-tech-fest", "cb-unknown"})
	suite.Require().NoError(err)
	suite.Require().Len(selected, 1)
	suite.Equal("cb-tech-fest", selected[0].CashbookID)

	// Second subset read within the TTL is served from the cached collection.
	suite.clock.Advance(time.Minute)
	selected, err = suite.service.GetCashbooksByIDs(ctx, []string{"cb-cultural-night"})
	suite.Require().NoError(err)
	suite.Require().Len(selected, 1)
	suite.Equal("cb-cultural-night", selected[0].CashbookID)

	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestGetCashbooksByIDs_EmptyIDsReturnsAll() {
	ctx := context.Background()

	suite.mockCashbookRepo.On("ListCashbooks", ctx).Return(sampleCashbooks(), nil).Once()

	all, err := suite.service.GetCashbooksByIDs(ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestGetFundData_NormalizesTransactionIDs() {
	ctx := context.Background()
	cashbook := &domain.Cashbook{CashbookID: "cb-tech-fest", FundsRaised: dec("125"), Expenses: dec("40"), RemainingBalance: dec("85")}
	txns := []domain.Transaction{
		{TransactionID: "cb-tech-fest-1", CashbookID: "cb-tech-fest", Type: domain.Income, Amount: dec("125")},
		{TransactionID: "cb-tech-fest-2", CashbookID: "cb-tech-fest", Type: domain.Expense, Amount: dec("40")},
	}

	suite.mockCashbookRepo.On("FindCashbookByID", ctx, "cb-tech-fest").Return(cashbook, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByCashbook", ctx, "cb-tech-fest").Return(txns, nil).Once()

	fundData, err := suite.service.GetFundData(ctx, "cb-tech-fest")
	suite.Require().NoError(err)
	suite.Require().Len(fundData.Transactions, 2)
	suite.Equal("1", fundData.Transactions[0].TransactionID)
	suite.Equal("2", fundData.Transactions[1].TransactionID)
	suite.True(fundData.RemainingBalance.Equal(dec("85")))

	suite.mockCashbookRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestGetFundData_EmptyLedger() {
	ctx := context.Background()
	cashbook := &domain.Cashbook{CashbookID: "cb-new", FundsRaised: decimal.Zero, Expenses: decimal.Zero, RemainingBalance: decimal.Zero}

	suite.mockCashbookRepo.On("FindCashbookByID", ctx, "cb-new").Return(cashbook, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByCashbook", ctx, "cb-new").Return([]domain.Transaction{}, nil).Once()

	fundData, err := suite.service.GetFundData(ctx, "cb-new")
	suite.Require().NoError(err)
	suite.Empty(fundData.Transactions)
	suite.True(fundData.FundsRaised.IsZero())
	suite.True(fundData.RemainingBalance.IsZero())
}

func (suite *FundServiceTestSuite) TestCreateTransaction_InsertsRecomputesAndInvalidates() {
	ctx := context.Background()

	// Prime the cashbook snapshot so invalidation is observable.
	suite.mockCashbookRepo.On("ListCashbooks", ctx).Return(sampleCashbooks(), nil).Twice()
	_, err := suite.service.GetCashbooksByIDs(ctx, nil)
	suite.Require().NoError(err)

	existing := []domain.Transaction{
		{TransactionID: "cb-tech-fest-1", CashbookID: "cb-tech-fest", Type: domain.Income, Amount: dec("125")},
		{TransactionID: "cb-tech-fest-2", CashbookID: "cb-tech-fest", Type: domain.Expense, Amount: dec("40")},
		{TransactionID: "cb-tech-fest-3", CashbookID: "cb-tech-fest", Type: domain.Expense, Amount: dec("15")},
	}

	suite.mockTxnRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockCashbookRepo.On("LockCashbookTx", ctx, nil, "cb-tech-fest").Return(nil).Once()
	suite.mockTxnRepo.On("NextLocalSeqTx", ctx, nil, "cb-tech-fest").Return(int64(3), nil).Once()
	suite.mockTxnRepo.On("InsertTransactionTx", ctx, nil, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID == "cb-tech-fest-3" && t.Type == domain.Expense && t.Amount.Equal(dec("15"))
	})).Return(nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByCashbookTx", ctx, nil, "cb-tech-fest").Return(existing, nil).Once()
	suite.mockCashbookRepo.On("UpdateCashbookTotalsTx", ctx, nil, "cb-tech-fest",
		dec("125"), dec("55"), dec("70"), suite.clock.Now()).Return(nil).Once()
	suite.mockTxnRepo.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockTxnRepo.On("Rollback", ctx, nil).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		Date:        "2025-03-02",
		Description: "Stage decoration",
		Type:        "expense",
		Amount:      dec("15"),
		Category:    "Logistics",
	}
	txn, err := suite.service.CreateTransaction(ctx, "cb-tech-fest", req)
	suite.Require().NoError(err)
	suite.Equal("cb-tech-fest-3", txn.TransactionID)

	// The commit invalidated the snapshot: the next collection read refetches.
	_, err = suite.service.GetCashbooksByIDs(ctx, nil)
	suite.Require().NoError(err)

	suite.mockCashbookRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()

	req := dto.CreateTransactionRequest{
		Date:        "2025-03-02",
		Description: "Nothing",
		Type:        "expense",
		Amount:      decimal.Zero,
		Category:    "Misc",
	}
	txn, err := suite.service.CreateTransaction(ctx, "cb-tech-fest", req)
	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockTxnRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *FundServiceTestSuite) TestCreateTransaction_UnknownCashbookRollsBack() {
	ctx := context.Background()

	suite.mockTxnRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockCashbookRepo.On("LockCashbookTx", ctx, nil, "cb-missing").Return(apperrors.ErrNotFound).Once()
	suite.mockTxnRepo.On("Rollback", ctx, nil).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, "cb-missing", dto.CreateTransactionRequest{
		Date:        "2025-03-02",
		Description: "Orphan",
		Type:        "income",
		Amount:      dec("10"),
		Category:    "Misc",
	})
	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockTxnRepo.AssertNotCalled(suite.T(), "InsertTransactionTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestRecomputeCashbook_RebuildsTotalsFromLedger() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: "cb-tech-fest-1", Type: domain.Income, Amount: dec("100")},
		{TransactionID: "cb-tech-fest-2", Type: domain.Income, Amount: dec("25")},
		{TransactionID: "cb-tech-fest-3", Type: domain.Expense, Amount: dec("40")},
	}
	repaired := &domain.Cashbook{CashbookID: "cb-tech-fest", FundsRaised: dec("125"), Expenses: dec("40"), RemainingBalance: dec("85")}

	suite.mockCashbookRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockCashbookRepo.On("LockCashbookTx", ctx, nil, "cb-tech-fest").Return(nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByCashbookTx", ctx, nil, "cb-tech-fest").Return(txns, nil).Once()
	suite.mockCashbookRepo.On("UpdateCashbookTotalsTx", ctx, nil, "cb-tech-fest",
		dec("125"), dec("40"), dec("85"), suite.clock.Now()).Return(nil).Once()
	suite.mockCashbookRepo.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockCashbookRepo.On("Rollback", ctx, nil).Return(nil).Once()
	suite.mockCashbookRepo.On("FindCashbookByID", ctx, "cb-tech-fest").Return(repaired, nil).Once()

	cashbook, err := suite.service.RecomputeCashbook(ctx, "cb-tech-fest")
	suite.Require().NoError(err)
	suite.True(cashbook.RemainingBalance.Equal(dec("85")))

	suite.mockCashbookRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestRecomputeCashbook_EmptyLedgerYieldsZeroTotals() {
	ctx := context.Background()
	repaired := &domain.Cashbook{CashbookID: "cb-new", FundsRaised: decimal.Zero, Expenses: decimal.Zero, RemainingBalance: decimal.Zero}

	suite.mockCashbookRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockCashbookRepo.On("LockCashbookTx", ctx, nil, "cb-new").Return(nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByCashbookTx", ctx, nil, "cb-new").Return([]domain.Transaction{}, nil).Once()
	suite.mockCashbookRepo.On("UpdateCashbookTotalsTx", ctx, nil, "cb-new",
		decimal.Zero, decimal.Zero, decimal.Zero, suite.clock.Now()).Return(nil).Once()
	suite.mockCashbookRepo.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockCashbookRepo.On("Rollback", ctx, nil).Return(nil).Once()
	suite.mockCashbookRepo.On("FindCashbookByID", ctx, "cb-new").Return(repaired, nil).Once()

	cashbook, err := suite.service.RecomputeCashbook(ctx, "cb-new")
	suite.Require().NoError(err)
	suite.True(cashbook.FundsRaised.IsZero())

	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestCreateCashbook_DefaultsToZeroAggregates() {
	ctx := context.Background()

	suite.mockCashbookRepo.On("SaveCashbook", ctx, mock.MatchedBy(func(cb domain.Cashbook) bool {
		return cb.CashbookID == "cb-sports-meet" && cb.FundsRaised.IsZero() && cb.Expenses.IsZero() && cb.RemainingBalance.IsZero()
	})).Return(nil).Once()

	cashbook, err := suite.service.CreateCashbook(ctx, dto.CreateCashbookRequest{CashbookID: "cb-sports-meet"})
	suite.Require().NoError(err)
	suite.Equal("cb-sports-meet", cashbook.CashbookID)
	suite.Equal(suite.clock.Now(), cashbook.LastUpdatedAt)

	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestCreateCashbook_RejectsNegativeSeed() {
	ctx := context.Background()
	negative := dec("-5")

	cashbook, err := suite.service.CreateCashbook(ctx, dto.CreateCashbookRequest{
		CashbookID: "cb-bad",
		Expenses:   &negative,
	})
	suite.Require().Error(err)
	suite.Nil(cashbook)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockCashbookRepo.AssertNotCalled(suite.T(), "SaveCashbook", mock.Anything, mock.Anything)
}

func (suite *FundServiceTestSuite) TestDeleteCashbook_StillReferenced() {
	ctx := context.Background()

	suite.mockCashbookRepo.On("DeleteCashbook", ctx, "cb-tech-fest").Return(apperrors.ErrReferenced).Once()

	err := suite.service.DeleteCashbook(ctx, "cb-tech-fest")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferenced)

	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestDeleteCashbook_InvalidatesCache() {
	ctx := context.Background()

	suite.mockCashbookRepo.On("ListCashbooks", ctx).Return(sampleCashbooks(), nil).Twice()
	suite.mockCashbookRepo.On("DeleteCashbook", ctx, "cb-cultural-night").Return(nil).Once()

	_, err := suite.service.GetCashbooksByIDs(ctx, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteCashbook(ctx, "cb-cultural-night"))

	_, err = suite.service.GetCashbooksByIDs(ctx, nil)
	suite.Require().NoError(err)

	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func TestFundServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundServiceTestSuite))
}
