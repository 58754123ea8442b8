package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "COTIZACION_FINALIZADA").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic carrier used when events cross process
// boundaries and the concrete type is no longer known.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// QuoteFinalized is emitted after quote rows are committed for a user.
type QuoteFinalized struct {
	UserID     string
	QuoteCount int
	Total      float64
	Days       int
	OccurredAt time.Time
}

func (e QuoteFinalized) EventType() string {
	return "COTIZACION_FINALIZADA"
}

func (e QuoteFinalized) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":     e.UserID,
		"quote_count": e.QuoteCount,
		"total":       e.Total,
		"days":        e.Days,
	}
}

func (e QuoteFinalized) Timestamp() time.Time {
	return e.OccurredAt
}
