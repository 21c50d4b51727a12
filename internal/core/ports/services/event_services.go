package services

import (
	"context"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/campusfunds/event_funds_app/internal/dto"
)

// EventReaderSvc defines the read side of the event facade. Cache behavior is
// part of the contract: ListEvents and ListEventsWithFunds are read-through
// cached, the filtered listings always go to the data source.
type EventReaderSvc interface {
	// ListEvents returns the full event collection, date descending.
	ListEvents(ctx context.Context) ([]domain.Event, error)

	// GetEventByID serves from the cached collection when fresh and present,
	// otherwise falls back to a single-row fetch (not cached individually).
	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEventsByStatus bypasses the cache and filters at the data source.
	ListEventsByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)

	// ListEventsByType bypasses the cache and filters at the data source.
	ListEventsByType(ctx context.Context, eventType string) ([]domain.Event, error)

	// ListEventsWithFunds returns both full collections, fetching events and
	// cashbooks concurrently when either snapshot is stale.
	ListEventsWithFunds(ctx context.Context) (*domain.EventsWithFunds, error)
}

// EventWriterSvc defines the write side of the event facade. Every successful
// write invalidates the entire cache.
type EventWriterSvc interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// EventSvcFacade combines the event read and write facades.
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
}
