package postgres

import (
	"context"
	"database/sql"

	"attorneycrm/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

// NewRSVPRepository returns an RSVPRepository backed by Postgres.
func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

func (r *rsvpRepository) ListAll(ctx context.Context) ([]*domain.RSVP, error) {
	query := `
		SELECT id, contact_id, event_id, status, attended
		FROM rsvps
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rsvps := make([]*domain.RSVP, 0)
	for rows.Next() {
		rsvp := &domain.RSVP{}
		if err := rows.Scan(&rsvp.ID, &rsvp.ContactID, &rsvp.EventID, &rsvp.Status, &rsvp.Attended); err != nil {
			return nil, err
		}
		if rsvp.Status == "" {
			rsvp.Status = domain.RSVPPending
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, rows.Err()
}

func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	if rsvp.Status == "" {
		rsvp.Status = domain.RSVPPending
	}
	query := `
		INSERT INTO rsvps (contact_id, event_id, status, attended, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, rsvp.ContactID, rsvp.EventID, rsvp.Status, rsvp.Attended).Scan(&rsvp.ID)
}
