package services

import (
	"context"
	"fmt"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
	portsrepo "github.com/campusfunds/event_funds_app/internal/core/ports/repositories"
	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService combines two bulk reads into dashboard statistics. The
// cache is bypassed: the dashboard always reflects the store.
type reportingService struct {
	BaseService
	eventRepo    portsrepo.EventReader
	cashbookRepo portsrepo.CashbookReader
}

// NewReportingService creates a new reporting service
func NewReportingService(eventRepo portsrepo.EventReader, cashbookRepo portsrepo.CashbookReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		eventRepo:    eventRepo,
		cashbookRepo: cashbookRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDashboardStats counts events per lifecycle status and sums the fund
// aggregates across all cashbooks.
func (s *reportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	statuses, err := s.eventRepo.ListEventStatuses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch event statuses for dashboard")
		return nil, fmt.Errorf("failed to get dashboard stats in service: %w", err)
	}

	cashbooks, err := s.cashbookRepo.ListCashbooks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch cashbooks for dashboard")
		return nil, fmt.Errorf("failed to get dashboard stats in service: %w", err)
	}

	stats := &domain.DashboardStats{
		TotalEvents:      len(statuses),
		TotalFundsRaised: decimal.Zero,
		TotalExpenses:    decimal.Zero,
		TotalBalance:     decimal.Zero,
	}

	for _, status := range statuses {
		switch status {
		case domain.StatusUpcoming:
			stats.UpcomingEvents++
		case domain.StatusOngoing:
			stats.OngoingEvents++
		case domain.StatusCompleted:
			stats.CompletedEvents++
		case domain.StatusCancelled:
			stats.CancelledEvents++
		}
	}

	for _, cb := range cashbooks {
		stats.TotalFundsRaised = stats.TotalFundsRaised.Add(cb.FundsRaised)
		stats.TotalExpenses = stats.TotalExpenses.Add(cb.Expenses)
		stats.TotalBalance = stats.TotalBalance.Add(cb.RemainingBalance)
	}

	return stats, nil
}
