package airtable

import (
	"context"
	"fmt"

	"attorneycrm/internal/domain"
)

const rsvpsTable = "RSVPs"

type rsvpRepository struct {
	client *Client
}

// NewRSVPRepository returns an RSVPRepository backed by the RSVPs table.
func NewRSVPRepository(client *Client) domain.RSVPRepository {
	return &rsvpRepository{client: client}
}

func (r *rsvpRepository) ListAll(ctx context.Context) ([]*domain.RSVP, error) {
	records, err := r.client.Select(ctx, rsvpsTable)
	if err != nil {
		return nil, fmt.Errorf("select rsvps: %w", err)
	}
	rsvps := make([]*domain.RSVP, 0, len(records))
	for i := range records {
		rsvps = append(rsvps, rsvpFromRecord(&records[i]))
	}
	return rsvps, nil
}

func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	status := rsvp.Status
	if status == "" {
		status = domain.RSVPPending
	}
	fields := map[string]any{
		"Linked Contact": []string{rsvp.ContactID},
		"Linked Event":   []string{rsvp.EventID},
		"RSVP Status":    status,
	}
	rec, err := r.client.Create(ctx, rsvpsTable, fields)
	if err != nil {
		return fmt.Errorf("create rsvp: %w", err)
	}
	rsvp.ID = rec.ID
	rsvp.Status = status
	return nil
}

func rsvpFromRecord(rec *Record) *domain.RSVP {
	status := stringField(rec, "RSVP Status")
	if status == "" {
		status = domain.RSVPPending
	}
	return &domain.RSVP{
		ID:        rec.ID,
		ContactID: firstLinkedID(rec, "Linked Contact"),
		EventID:   firstLinkedID(rec, "Linked Event"),
		Status:    status,
		Attended:  boolField(rec, "Attended"),
	}
}
