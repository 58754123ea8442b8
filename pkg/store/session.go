package store

// Session represents the active conversational state of one user in memory
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"` // empty for anonymous visitors
	State  string `json:"state"`

	// Items the user has picked so far (service item ids, deduplicated)
	Selections []uint `json:"selections"`

	// Rental duration in days, 0 means "not captured yet"
	Days int `json:"days"`

	// Services detected from free text but not yet confirmed by the user
	PendingIntentions []string `json:"pending_intentions"`

	// Metadata for last interaction
	LastQuery string `json:"last_query"`
}

const (
	StateIdle              = "IDLE"
	StateAwaitingSelection = "AWAITING_SELECTION"
	StateAwaitingDuration  = "AWAITING_DURATION"
	StateReadyToQuote      = "READY_TO_QUOTE"
	StateFinalized         = "FINALIZED"
)

// HasSelection reports whether the item is already part of the session.
func (s *Session) HasSelection(id uint) bool {
	for _, sel := range s.Selections {
		if sel == id {
			return true
		}
	}
	return false
}

// AddSelections merges ids into the session, dropping duplicates.
// Non-positive ids must be filtered by the caller before reaching here.
func (s *Session) AddSelections(ids []uint) {
	for _, id := range ids {
		if id == 0 || s.HasSelection(id) {
			continue
		}
		s.Selections = append(s.Selections, id)
	}
}

// ClearQuote resets the quote-building state. Idempotent.
func (s *Session) ClearQuote() {
	s.Selections = nil
	s.Days = 0
}

// AddIntention records a detected service, keeping the list free of repeats.
func (s *Session) AddIntention(service string) {
	for _, p := range s.PendingIntentions {
		if p == service {
			return
		}
	}
	s.PendingIntentions = append(s.PendingIntentions, service)
}
