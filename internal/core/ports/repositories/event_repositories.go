package repositories

import (
	"context"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
)

// EventReader defines read operations for event data.
type EventReader interface {
	// ListEvents retrieves the full event collection, ordered by date descending.
	ListEvents(ctx context.Context) ([]domain.Event, error)

	// FindEventByID retrieves a single event by its primary key.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEventsByStatus retrieves events filtered by lifecycle status at the
	// data source, ordered by date descending.
	ListEventsByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)

	// ListEventsByType retrieves events filtered by category tag at the data
	// source, ordered by date descending.
	ListEventsByType(ctx context.Context, eventType string) ([]domain.Event, error)

	// ListEventStatuses retrieves only the status column of every event, for
	// dashboard counting.
	ListEventStatuses(ctx context.Context) ([]domain.EventStatus, error)
}

// EventWriter defines write operations for event data.
type EventWriter interface {
	// SaveEvent persists a new event.
	SaveEvent(ctx context.Context, event domain.Event) error

	// UpdateEvent applies a partial update to an existing event and stamps
	// its update time.
	UpdateEvent(ctx context.Context, event domain.Event) error

	// DeleteEvent removes an event by its primary key.
	DeleteEvent(ctx context.Context, eventID string) error
}

// EventRepositoryFacade combines all event-related repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
