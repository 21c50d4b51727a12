package dto

import (
	"time"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
)

// CreateEventRequest defines the data needed to create a new event.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=Upcoming Ongoing Completed Cancelled"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Team        string `json:"team"`
	CashbookID  string `json:"cashbookID" binding:"required,cashbook_id"`
	Media       string `json:"media" binding:"omitempty,url"`
}

// UpdateEventRequest defines a partial update; nil fields stay untouched.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Status      *string `json:"status" binding:"omitempty,oneof=Upcoming Ongoing Completed Cancelled"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Team        *string `json:"team"`
	CashbookID  *string `json:"cashbookID" binding:"omitempty,cashbook_id"`
	Media       *string `json:"media" binding:"omitempty,url"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID     string    `json:"eventID"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
	Team        string    `json:"team"`
	CashbookID  string    `json:"cashbookID"`
	Media       string    `json:"media,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToEventResponse converts a domain Event to an EventResponse DTO.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:     e.EventID,
		Title:       e.Title,
		Description: e.Description,
		Type:        e.Type,
		Status:      string(e.Status),
		Date:        e.Date.Format("2006-01-02"),
		Team:        e.Team,
		CashbookID:  e.CashbookID,
		Media:       e.Media,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.LastUpdatedAt,
	}
}

// ToListEventResponse converts a slice of domain Events to response DTOs.
func ToListEventResponse(events []domain.Event) []EventResponse {
	res := make([]EventResponse, len(events))
	for i := range events {
		res[i] = ToEventResponse(&events[i])
	}
	return res
}

// EventsWithFundsResponse pairs the event listing with its cashbooks.
type EventsWithFundsResponse struct {
	Events    []EventResponse    `json:"events"`
	Cashbooks []CashbookResponse `json:"cashbooks"`
}

// ToEventsWithFundsResponse converts the composed collection view.
func ToEventsWithFundsResponse(ef *domain.EventsWithFunds) EventsWithFundsResponse {
	return EventsWithFundsResponse{
		Events:    ToListEventResponse(ef.Events),
		Cashbooks: ToListCashbookResponse(ef.Cashbooks),
	}
}
