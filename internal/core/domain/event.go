package domain

import "time"

// EventStatus indicates where an event sits in its lifecycle.
// The set is closed: every event carries exactly one of these four values.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "Upcoming"
	StatusOngoing   EventStatus = "Ongoing"
	StatusCompleted EventStatus = "Completed"
	StatusCancelled EventStatus = "Cancelled"
)

// Event represents a single college event. Each event references exactly one
// Cashbook; several events may share the same cashbook.
type Event struct {
	EventID     string      `json:"eventID"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"` // category tag, e.g. "Cultural", "Technical"
	Status      EventStatus `json:"status"`
	Date        time.Time   `json:"date"`
	Team        string      `json:"team"` // organizing team
	CashbookID  string      `json:"cashbookID"`
	Media       string      `json:"media"` // optional media reference (URL)
	AuditFields
}
