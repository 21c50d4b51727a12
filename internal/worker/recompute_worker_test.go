package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusfunds/event_funds_app/internal/amqp"
	"github.com/campusfunds/event_funds_app/internal/apperrors"
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/campusfunds/event_funds_app/internal/dto"
)

type mockFundService struct {
	mock.Mock
}

func (m *mockFundService) GetCashbookByID(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	args := m.Called(ctx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}

func (m *mockFundService) GetCashbooksByIDs(ctx context.Context, cashbookIDs []string) ([]domain.Cashbook, error) {
	args := m.Called(ctx, cashbookIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashbook), args.Error(1)
}

func (m *mockFundService) GetFundData(ctx context.Context, cashbookID string) (*domain.FundData, error) {
	args := m.Called(ctx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundData), args.Error(1)
}

func (m *mockFundService) CreateTransaction(ctx context.Context, cashbookID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, cashbookID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *mockFundService) RecomputeCashbook(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	args := m.Called(ctx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}

func (m *mockFundService) CreateCashbook(ctx context.Context, req dto.CreateCashbookRequest) (*domain.Cashbook, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}

func (m *mockFundService) DeleteCashbook(ctx context.Context, cashbookID string) error {
	args := m.Called(ctx, cashbookID)
	return args.Error(0)
}

func newTestWorker(fundSvc *mockFundService) *RecomputeWorker {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRecomputeWorker(nil, fundSvc, logger)
}

func TestHandleMessage_RebuildsAggregates(t *testing.T) {
	fundSvc := new(mockFundService)
	w := newTestWorker(fundSvc)

	cashbook := &domain.Cashbook{
		CashbookID:       "cb-tech-fest",
		FundsRaised:      decimal.RequireFromString("125"),
		Expenses:         decimal.RequireFromString("40"),
		RemainingBalance: decimal.RequireFromString("85"),
	}
	fundSvc.On("RecomputeCashbook", mock.Anything, "cb-tech-fest").Return(cashbook, nil).Once()

	err := w.handleMessage(context.Background(), amqp.NewRecomputeMessage("cb-tech-fest", "drift repair"))

	assert.NoError(t, err)
	fundSvc.AssertExpectations(t)
}

func TestHandleMessage_MissingCashbookDropsMessage(t *testing.T) {
	fundSvc := new(mockFundService)
	w := newTestWorker(fundSvc)

	fundSvc.On("RecomputeCashbook", mock.Anything, "cb-deleted").
		Return(nil, apperrors.ErrNotFound).Once()

	err := w.handleMessage(context.Background(), amqp.NewRecomputeMessage("cb-deleted", "drift repair"))

	assert.Error(t, err)
	assert.ErrorIs(t, err, amqp.ErrDropMessage)
	fundSvc.AssertExpectations(t)
}

func TestHandleMessage_TransientErrorRequeues(t *testing.T) {
	fundSvc := new(mockFundService)
	w := newTestWorker(fundSvc)

	dbErr := errors.New("connection reset")
	fundSvc.On("RecomputeCashbook", mock.Anything, "cb-tech-fest").
		Return(nil, dbErr).Once()

	err := w.handleMessage(context.Background(), amqp.NewRecomputeMessage("cb-tech-fest", "drift repair"))

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, amqp.ErrDropMessage)
	fundSvc.AssertExpectations(t)
}
