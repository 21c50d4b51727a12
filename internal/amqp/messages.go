package amqp

import (
	"encoding/json"
	"time"
)

// RecomputeMessage asks the worker to rebuild one cashbook's aggregates.
// It carries only the cashbook id; the worker reads the transaction rows
// itself, so a stale or duplicated message is harmless.
type RecomputeMessage struct {
	CashbookID string    `json:"cashbookId"`
	Reason     string    `json:"reason"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewRecomputeMessage creates a recompute request for a cashbook.
func NewRecomputeMessage(cashbookID, reason string) *RecomputeMessage {
	return &RecomputeMessage{
		CashbookID: cashbookID,
		Reason:     reason,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *RecomputeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecomputeMessageFromJSON creates a message from JSON bytes
func RecomputeMessageFromJSON(data []byte) (*RecomputeMessage, error) {
	var msg RecomputeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
