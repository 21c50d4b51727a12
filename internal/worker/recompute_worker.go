package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campusfunds/event_funds_app/internal/amqp"
	"github.com/campusfunds/event_funds_app/internal/apperrors"
	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
)

// RecomputeWorker drains the recompute queue and rebuilds cashbook
// aggregates. The recompute is idempotent, so crashes and redeliveries only
// cost duplicate work.
type RecomputeWorker struct {
	client  *amqp.Client
	fundSvc portssvc.FundSvcFacade
	logger  *slog.Logger
}

// NewRecomputeWorker creates a worker bound to the given queue client.
func NewRecomputeWorker(client *amqp.Client, fundSvc portssvc.FundSvcFacade, logger *slog.Logger) *RecomputeWorker {
	return &RecomputeWorker{
		client:  client,
		fundSvc: fundSvc,
		logger:  logger,
	}
}

// Run consumes recompute requests until the context is canceled.
func (w *RecomputeWorker) Run(ctx context.Context) error {
	return w.client.ConsumeRecompute(ctx, func(msg *amqp.RecomputeMessage) error {
		return w.handleMessage(ctx, msg)
	})
}

// handleMessage rebuilds the aggregates for one request. A cashbook deleted
// after enqueue stays missing on every redelivery, so that failure drops the
// message; other errors requeue.
func (w *RecomputeWorker) handleMessage(ctx context.Context, msg *amqp.RecomputeMessage) error {
	cashbook, err := w.fundSvc.RecomputeCashbook(ctx, msg.CashbookID)
	if errors.Is(err, apperrors.ErrNotFound) {
		w.logger.Warn("Dropping recompute for missing cashbook",
			slog.String("cashbook_id", msg.CashbookID),
			slog.String("reason", msg.Reason))
		return fmt.Errorf("cashbook %s not found: %w", msg.CashbookID, amqp.ErrDropMessage)
	}
	if err != nil {
		return err
	}

	w.logger.Info("Cashbook aggregates rebuilt",
		slog.String("cashbook_id", cashbook.CashbookID),
		slog.String("funds_raised", cashbook.FundsRaised.String()),
		slog.String("expenses", cashbook.Expenses.String()),
		slog.String("remaining_balance", cashbook.RemainingBalance.String()))
	return nil
}
