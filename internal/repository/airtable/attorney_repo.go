package airtable

import (
	"context"
	"fmt"
	"strings"

	"attorneycrm/internal/domain"
)

const attorneysTable = "Attorneys"

type attorneyRepository struct {
	client *Client
}

// NewAttorneyRepository returns an AttorneyRepository backed by the Attorneys
// table.
func NewAttorneyRepository(client *Client) domain.AttorneyRepository {
	return &attorneyRepository{client: client}
}

func (r *attorneyRepository) GetByID(ctx context.Context, id string) (*domain.Attorney, error) {
	rec, err := r.client.Find(ctx, attorneysTable, id)
	if err != nil {
		return nil, err
	}
	return attorneyFromRecord(rec), nil
}

func (r *attorneyRepository) GetByEmail(ctx context.Context, email string) (*domain.Attorney, error) {
	formula := fmt.Sprintf("{Email} = '%s'", escapeFormulaString(email))
	records, err := r.client.SelectByFormula(ctx, attorneysTable, formula)
	if err != nil {
		return nil, fmt.Errorf("select attorneys by email: %w", err)
	}
	for i := range records {
		if strings.EqualFold(stringField(&records[i], "Email"), email) {
			return attorneyFromRecord(&records[i]), nil
		}
	}
	return nil, domain.ErrNotFound
}

func attorneyFromRecord(rec *Record) *domain.Attorney {
	return &domain.Attorney{
		ID:           rec.ID,
		Name:         stringField(rec, "Name"),
		Email:        stringField(rec, "Email"),
		PasswordHash: stringField(rec, "Password Hash"),
	}
}
