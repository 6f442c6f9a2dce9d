package postgres

import (
	"context"
	"database/sql"
	"errors"

	"attorneycrm/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventRepository backed by Postgres.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, name, date, description
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var dateNull sql.NullTime
	var descNull sql.NullString
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &dateNull, &descNull); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if dateNull.Valid {
		e.Date = &dateNull.Time
	}
	if descNull.Valid {
		e.Description = descNull.String
	}
	return e, nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, name, date, description
		FROM events
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var dateNull sql.NullTime
		var descNull sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &dateNull, &descNull); err != nil {
			return nil, err
		}
		if dateNull.Valid {
			e.Date = &dateNull.Time
		}
		if descNull.Valid {
			e.Description = descNull.String
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
