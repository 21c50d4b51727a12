package models

import "time"

// AuditFields holds the timestamp columns shared by the events table rows.
type AuditFields struct {
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"updated_at"`
}
