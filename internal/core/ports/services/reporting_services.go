package services

import (
	"context"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
)

// ReportingSvcFacade aggregates dashboard statistics. Always bypasses the
// cache: two bulk reads combined in the service.
type ReportingSvcFacade interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
