package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"attorneycrm/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

// NewContactRepository returns a ContactRepository backed by Postgres.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

const contactSelect = `
	SELECT c.id, c.first_name, c.last_name, c.email, c.company_id,
	       COALESCE(array_agg(DISTINCT ce.event_id) FILTER (WHERE ce.event_id IS NOT NULL), '{}'),
	       COALESCE(array_agg(DISTINCT ca.attorney_id) FILTER (WHERE ca.attorney_id IS NOT NULL), '{}')
	FROM contacts c
	LEFT JOIN contact_events ce ON ce.contact_id = c.id
	LEFT JOIN contact_attorneys ca ON ca.contact_id = c.id
`

func (r *contactRepository) ListAll(ctx context.Context) ([]*domain.Contact, error) {
	query := contactSelect + `
	GROUP BY c.id, c.first_name, c.last_name, c.email, c.company_id
	ORDER BY c.created_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := contactSelect + `
	WHERE c.id = $1
	GROUP BY c.id, c.first_name, c.last_name, c.email, c.company_id
	`
	rows, err := r.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}
	return scanContact(rows)
}

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var companyID any
	if c.CompanyID != "" {
		companyID = c.CompanyID
	}
	query := `
		INSERT INTO contacts (first_name, last_name, email, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, companyID).Scan(&c.ID); err != nil {
		return err
	}

	for _, attorneyID := range c.AttorneyIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contact_attorneys (contact_id, attorney_id) VALUES ($1, $2)`,
			c.ID, attorneyID); err != nil {
			return err
		}
	}
	for _, eventID := range c.EventIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contact_events (contact_id, event_id) VALUES ($1, $2)`,
			c.ID, eventID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func scanContact(rows *sql.Rows) (*domain.Contact, error) {
	c := &domain.Contact{}
	var companyNull sql.NullString
	var eventIDs, attorneyIDs pq.StringArray
	if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &companyNull, &eventIDs, &attorneyIDs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if companyNull.Valid {
		c.CompanyID = companyNull.String
	}
	c.EventIDs = []string(eventIDs)
	c.AttorneyIDs = []string(attorneyIDs)
	return c, nil
}
