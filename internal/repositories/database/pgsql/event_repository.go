package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusfunds/event_funds_app/internal/apperrors"
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	portsrepo "github.com/campusfunds/event_funds_app/internal/core/ports/repositories"
	"github.com/campusfunds/event_funds_app/internal/models"
	"github.com/campusfunds/event_funds_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const eventColumns = `id, title, description, type, status, date, team, cashbook_id, media, created_at, updated_at`

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for event data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

func scanEventRow(row pgx.CollectableRow) (models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.EventID,
		&event.Title,
		&event.Description,
		&event.Type,
		&event.Status,
		&event.Date,
		&event.Team,
		&event.CashbookID,
		&event.Media,
		&event.CreatedAt,
		&event.LastUpdatedAt,
	)
	return event, err
}

// ListEvents retrieves every event, newest first.
func (r *PgxEventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY date DESC;`, eventColumns)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	modelEvents, err := pgx.CollectRows(rows, scanEventRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}

	return mapping.ToDomainEventSlice(modelEvents), nil
}

// FindEventByID retrieves a single event by its primary key.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1;`, eventColumns)

	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event %s: %w", eventID, err)
	}
	defer rows.Close()

	modelEvent, err := pgx.CollectOneRow(rows, scanEventRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by id %s: %w", eventID, err)
	}

	domainEvent := mapping.ToDomainEvent(modelEvent)
	return &domainEvent, nil
}

// ListEventsByStatus retrieves events with the given lifecycle status,
// filtered at the data source.
func (r *PgxEventRepository) ListEventsByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE status = $1 ORDER BY date DESC;`, eventColumns)

	rows, err := r.Pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query events by status %s: %w", status, err)
	}
	defer rows.Close()

	modelEvents, err := pgx.CollectRows(rows, scanEventRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan events by status: %w", err)
	}

	return mapping.ToDomainEventSlice(modelEvents), nil
}

// ListEventsByType retrieves events with the given category tag, filtered at
// the data source.
func (r *PgxEventRepository) ListEventsByType(ctx context.Context, eventType string) ([]domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE type = $1 ORDER BY date DESC;`, eventColumns)

	rows, err := r.Pool.Query(ctx, query, eventType)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by type %s: %w", eventType, err)
	}
	defer rows.Close()

	modelEvents, err := pgx.CollectRows(rows, scanEventRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan events by type: %w", err)
	}

	return mapping.ToDomainEventSlice(modelEvents), nil
}

// ListEventStatuses retrieves only the status column of every event.
func (r *PgxEventRepository) ListEventStatuses(ctx context.Context) ([]domain.EventStatus, error) {
	query := `SELECT status FROM events;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query event statuses: %w", err)
	}
	defer rows.Close()

	statuses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EventStatus, error) {
		var s string
		err := row.Scan(&s)
		return domain.EventStatus(s), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan event statuses: %w", err)
	}

	return statuses, nil
}

// SaveEvent persists a new event.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	modelEvent := mapping.ToModelEvent(event)

	query := `
		INSERT INTO events (id, title, description, type, status, date, team, cashbook_id, media, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelEvent.EventID,
		modelEvent.Title,
		modelEvent.Description,
		modelEvent.Type,
		modelEvent.Status,
		modelEvent.Date,
		modelEvent.Team,
		modelEvent.CashbookID,
		modelEvent.Media,
		modelEvent.CreatedAt,
		modelEvent.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.ErrDuplicate
			}
			if pgErr.Code == "23503" { // foreign_key_violation: unknown cashbook
				return fmt.Errorf("cashbook %s does not exist: %w", event.CashbookID, apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to save event %s: %w", event.EventID, err)
	}
	return nil
}

// UpdateEvent overwrites the mutable columns of an existing event.
func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	modelEvent := mapping.ToModelEvent(event)

	query := `
		UPDATE events
		SET title = $2, description = $3, type = $4, status = $5, date = $6, team = $7, cashbook_id = $8, media = $9, updated_at = $10
		WHERE id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelEvent.EventID,
		modelEvent.Title,
		modelEvent.Description,
		modelEvent.Type,
		modelEvent.Status,
		modelEvent.Date,
		modelEvent.Team,
		modelEvent.CashbookID,
		modelEvent.Media,
		modelEvent.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("cashbook %s does not exist: %w", event.CashbookID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update event %s: %w", event.EventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEvent removes an event by its primary key.
func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM events WHERE id = $1;`

	tag, err := r.Pool.Exec(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
