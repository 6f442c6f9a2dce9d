package airtable

import (
	"context"
	"fmt"
	"time"

	"attorneycrm/internal/domain"
)

const eventsTable = "Events"

// Layouts the store has been observed to use for date fields.
var eventDateLayouts = []string{"2006-01-02", time.RFC3339}

type eventRepository struct {
	client *Client
}

// NewEventRepository returns an EventRepository backed by the Events table.
func NewEventRepository(client *Client) domain.EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	rec, err := r.client.Find(ctx, eventsTable, id)
	if err != nil {
		return nil, err
	}
	return eventFromRecord(rec), nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	records, err := r.client.Select(ctx, eventsTable)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	events := make([]*domain.Event, 0, len(records))
	for i := range records {
		events = append(events, eventFromRecord(&records[i]))
	}
	return events, nil
}

func eventFromRecord(rec *Record) *domain.Event {
	e := &domain.Event{
		ID: rec.ID,
		// Older rows use "Name"/"Date" instead of "Event Name"/"Event Date".
		Name:        stringField(rec, "Event Name", "Name"),
		Description: stringField(rec, "Description"),
	}
	if raw := stringField(rec, "Event Date", "Date"); raw != "" {
		for _, layout := range eventDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				e.Date = &t
				break
			}
		}
	}
	return e
}
