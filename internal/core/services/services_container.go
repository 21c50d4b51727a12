package services

import (
	"time"

	"github.com/campusfunds/event_funds_app/internal/cache"
	portsrepo "github.com/campusfunds/event_funds_app/internal/core/ports/repositories"
	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
)

// NewServiceContainer wires the facade services over a shared snapshot cache.
// The cache is owned here: the composing component injects clock and TTL
// rather than the cache living as a process-wide singleton.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cacheTTL time.Duration) *portssvc.ServiceContainer {
	cacheStore := cache.NewStore(cacheTTL, time.Now)

	container := &portssvc.ServiceContainer{}
	container.Event = NewEventService(repos.EventRepo, repos.CashbookRepo, cacheStore)
	container.Fund = NewFundService(repos.CashbookRepo, repos.TransactionRepo, cacheStore)
	container.Reporting = NewReportingService(repos.EventRepo, repos.CashbookRepo)
	return container
}
