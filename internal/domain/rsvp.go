package domain

import "context"

// RSVP statuses. Status is free-form in the store; anything else sorts with
// Pending.
const (
	RSVPYes     = "Yes"
	RSVPNo      = "No"
	RSVPPending = "Pending"
)

// RSVP links a contact to an event with a response status.
// swagger:model RSVP
type RSVP struct {
	ID        string `json:"id"`
	ContactID string `json:"contactId"`
	EventID   string `json:"eventId"`
	Status    string `json:"status"`
	Attended  bool   `json:"attended"`
}

// RSVPRepository defines storage operations for RSVPs.
type RSVPRepository interface {
	ListAll(ctx context.Context) ([]*RSVP, error)
	Create(ctx context.Context, rsvp *RSVP) error
}
