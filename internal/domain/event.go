package domain

import (
	"context"
	"time"
)

// Event represents a firm event contacts can be invited to. Events are
// read-only from this service's perspective; they are managed directly in the
// record store.
// swagger:model Event
type Event struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Date        *time.Time `json:"date"`
	Description string     `json:"description"`
}

// EventRef is the resolved display shape of an event reference.
type EventRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
}

// EventService defines event listing operations.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	// ListUpcomingEvents returns events dated today or later, plus undated
	// events, sorted by date ascending with undated events last.
	ListUpcomingEvents(ctx context.Context) ([]*Event, error)
}
