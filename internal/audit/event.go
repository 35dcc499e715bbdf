package audit

import "github.com/tech4life-beyond/kivai/internal/intent"

// Event is a single audit trail entry. Events are append-only and ordered
// by emission time.
type Event struct {
	Timestamp   string         `json:"timestamp"`
	ExecutionID string         `json:"execution_id"`
	Event       string         `json:"event"`
	Data        map[string]any `json:"data"`
}

// NewEvent builds an event stamped with the current UTC time.
func NewEvent(executionID, name string, data map[string]any) Event {
	if data == nil {
		data = map[string]any{}
	}
	return Event{
		Timestamp:   intent.UTCNow(),
		ExecutionID: executionID,
		Event:       name,
		Data:        data,
	}
}
