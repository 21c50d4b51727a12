package mapping

import (
	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/campusfunds/event_funds_app/internal/models"
)

// ToModelEvent converts a domain Event to a model Event.
func ToModelEvent(d domain.Event) models.Event {
	var media *string
	if d.Media != "" {
		media = &d.Media
	}
	return models.Event{
		EventID:     d.EventID,
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type,
		Status:      models.EventStatus(d.Status),
		Date:        d.Date,
		Team:        d.Team,
		CashbookID:  d.CashbookID,
		Media:       media,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainEvent converts a model Event to a domain Event.
func ToDomainEvent(m models.Event) domain.Event {
	media := ""
	if m.Media != nil {
		media = *m.Media
	}
	return domain.Event{
		EventID:     m.EventID,
		Title:       m.Title,
		Description: m.Description,
		Type:        m.Type,
		Status:      domain.EventStatus(m.Status),
		Date:        m.Date,
		Team:        m.Team,
		CashbookID:  m.CashbookID,
		Media:       media,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainEventSlice converts a slice of model Events to domain Events.
func ToDomainEventSlice(ms []models.Event) []domain.Event {
	ds := make([]domain.Event, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvent(m)
	}
	return ds
}
