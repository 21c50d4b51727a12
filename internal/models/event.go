package models

import "time"

// EventStatus mirrors the status column of the events table.
type EventStatus string

const (
	Upcoming  EventStatus = "Upcoming"
	Ongoing   EventStatus = "Ongoing"
	Completed EventStatus = "Completed"
	Cancelled EventStatus = "Cancelled"
)

// Event represents a row of the events table.
type Event struct {
	EventID     string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Status      EventStatus `json:"status"`
	Date        time.Time   `json:"date"`
	Team        string      `json:"team"`
	CashbookID  string      `json:"cashbook_id"` // FK -> cashbooks.id (Not Null)
	Media       *string     `json:"media"`       // Nullable
	AuditFields
}
