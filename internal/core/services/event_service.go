package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusfunds/event_funds_app/internal/cache"
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	portsrepo "github.com/campusfunds/event_funds_app/internal/core/ports/repositories"
	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
	"github.com/campusfunds/event_funds_app/internal/dto"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// eventService is the event side of the read/query facade. Collection reads
// go through the snapshot cache; every successful write invalidates it whole.
type eventService struct {
	BaseService
	eventRepo    portsrepo.EventRepositoryFacade
	cashbookRepo portsrepo.CashbookReader
	cache        *cache.Store
	now          func() time.Time
}

// EventServiceOption is a functional option for configuring the event service
type EventServiceOption func(*eventService)

// WithEventClock overrides the service clock (used by tests).
func WithEventClock(now func() time.Time) EventServiceOption {
	return func(s *eventService) {
		s.now = now
	}
}

// NewEventService creates a new event service with the provided options
func NewEventService(eventRepo portsrepo.EventRepositoryFacade, cashbookRepo portsrepo.CashbookReader, cacheStore *cache.Store, options ...EventServiceOption) portssvc.EventSvcFacade {
	svc := &eventService{
		eventRepo:    eventRepo,
		cashbookRepo: cashbookRepo,
		cache:        cacheStore,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure eventService implements the EventSvcFacade interface
var _ portssvc.EventSvcFacade = (*eventService)(nil)

// ListEvents returns the full event collection through the snapshot cache.
func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if events, ok := s.cache.Events.Get(); ok {
		s.LogDebug(ctx, "Serving events from cache", slog.Int("count", len(events)))
		return events, nil
	}

	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch events")
		return nil, fmt.Errorf("failed to list events in service: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}

	s.cache.Events.Set(events)
	return events, nil
}

// GetEventByID serves from the cached collection when it is fresh and holds
// the event; otherwise a single-row fetch, which is not cached individually.
func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	if events, ok := s.cache.Events.Get(); ok {
		for i := range events {
			if events[i].EventID == eventID {
				return &events[i], nil
			}
		}
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event by id in service: %w", err)
	}
	return event, nil
}

// ListEventsByStatus always bypasses the cache; the data source filters.
func (s *eventService) ListEventsByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	events, err := s.eventRepo.ListEventsByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by status in service: %w", err)
	}
	if events == nil {
		return []domain.Event{}, nil
	}
	return events, nil
}

// ListEventsByType always bypasses the cache; the data source filters.
func (s *eventService) ListEventsByType(ctx context.Context, eventType string) ([]domain.Event, error) {
	events, err := s.eventRepo.ListEventsByType(ctx, eventType)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by type in service: %w", err)
	}
	if events == nil {
		return []domain.Event{}, nil
	}
	return events, nil
}

// ListEventsWithFunds returns both full collections. When either snapshot is
// stale both fetches run concurrently and both snapshots are refreshed, so
// the events page loads with a single round-trip latency.
func (s *eventService) ListEventsWithFunds(ctx context.Context) (*domain.EventsWithFunds, error) {
	cachedEvents, eventsOK := s.cache.Events.Get()
	cachedCashbooks, cashbooksOK := s.cache.Cashbooks.Get()
	if eventsOK && cashbooksOK {
		s.LogDebug(ctx, "Serving events with funds from cache")
		return &domain.EventsWithFunds{Events: cachedEvents, Cashbooks: cachedCashbooks}, nil
	}

	var (
		events    []domain.Event
		cashbooks []domain.Cashbook
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.eventRepo.ListEvents(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch events: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cashbooks, err = s.cashbookRepo.ListCashbooks(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch cashbooks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to fetch events with funds")
		return nil, fmt.Errorf("failed to list events with funds in service: %w", err)
	}

	if events == nil {
		events = []domain.Event{}
	}
	if cashbooks == nil {
		cashbooks = []domain.Cashbook{}
	}

	s.cache.Events.Set(events)
	s.cache.Cashbooks.Set(cashbooks)

	return &domain.EventsWithFunds{Events: events, Cashbooks: cashbooks}, nil
}

// CreateEvent persists a new event and invalidates the cache.
func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid event date %q: %w", req.Date, err)
	}

	now := s.now()
	event := domain.Event{
		EventID:     uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Status:      domain.EventStatus(req.Status),
		Date:        date,
		Team:        req.Team,
		CashbookID:  req.CashbookID,
		Media:       req.Media,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to create event", slog.String("title", req.Title))
		return nil, fmt.Errorf("failed to create event in service: %w", err)
	}

	s.cache.InvalidateAll()
	s.LogInfo(ctx, "Event created", slog.String("event_id", event.EventID))
	return &event, nil
}

// UpdateEvent applies a partial update and invalidates the cache.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event for update in service: %w", err)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Type != nil {
		event.Type = *req.Type
	}
	if req.Status != nil {
		event.Status = domain.EventStatus(*req.Status)
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid event date %q: %w", *req.Date, err)
		}
		event.Date = date
	}
	if req.Team != nil {
		event.Team = *req.Team
	}
	if req.CashbookID != nil {
		event.CashbookID = *req.CashbookID
	}
	if req.Media != nil {
		event.Media = *req.Media
	}
	event.LastUpdatedAt = s.now()

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, fmt.Errorf("failed to update event in service: %w", err)
	}

	s.cache.InvalidateAll()
	s.LogInfo(ctx, "Event updated", slog.String("event_id", eventID))
	return event, nil
}

// DeleteEvent removes an event and invalidates the cache.
func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		s.LogError(ctx, err, "Failed to delete event", slog.String("event_id", eventID))
		return fmt.Errorf("failed to delete event in service: %w", err)
	}

	s.cache.InvalidateAll()
	s.LogInfo(ctx, "Event deleted", slog.String("event_id", eventID))
	return nil
}
