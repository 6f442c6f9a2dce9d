package airtable

import (
	"context"
	"fmt"
	"strings"

	"attorneycrm/internal/domain"
)

const contactsTable = "Contacts"

type contactRepository struct {
	client *Client
}

// NewContactRepository returns a ContactRepository backed by the Contacts
// table.
func NewContactRepository(client *Client) domain.ContactRepository {
	return &contactRepository{client: client}
}

func (r *contactRepository) ListAll(ctx context.Context) ([]*domain.Contact, error) {
	records, err := r.client.Select(ctx, contactsTable)
	if err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}
	contacts := make([]*domain.Contact, 0, len(records))
	for i := range records {
		contacts = append(contacts, contactFromRecord(&records[i]))
	}
	return contacts, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	rec, err := r.client.Find(ctx, contactsTable, id)
	if err != nil {
		return nil, err
	}
	return contactFromRecord(rec), nil
}

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	fields := map[string]any{
		"First Name": c.FirstName,
		"Last Name":  c.LastName,
		"Email":      c.Email,
		"Full Name":  strings.TrimSpace(c.FirstName + " " + c.LastName),
	}
	if len(c.AttorneyIDs) > 0 {
		fields["Associated Attorneys"] = c.AttorneyIDs
	}
	if c.CompanyID != "" {
		fields["Company"] = []string{c.CompanyID}
	}
	if len(c.EventIDs) > 0 {
		fields["Events"] = c.EventIDs
	}
	rec, err := r.client.Create(ctx, contactsTable, fields)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	c.ID = rec.ID
	return nil
}

func contactFromRecord(rec *Record) *domain.Contact {
	return &domain.Contact{
		ID:          rec.ID,
		FirstName:   stringField(rec, "First Name"),
		LastName:    stringField(rec, "Last Name"),
		Email:       stringField(rec, "Email"),
		CompanyID:   firstLinkedID(rec, "Company"),
		EventIDs:    linkedIDs(rec, "Events"),
		AttorneyIDs: linkedIDs(rec, "Associated Attorneys"),
	}
}
