package airtable

import (
	"context"
	"fmt"

	"attorneycrm/internal/domain"
)

const companiesTable = "Companies"

type companyRepository struct {
	client *Client
}

// NewCompanyRepository returns a CompanyRepository backed by the Companies
// table.
func NewCompanyRepository(client *Client) domain.CompanyRepository {
	return &companyRepository{client: client}
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	rec, err := r.client.Find(ctx, companiesTable, id)
	if err != nil {
		return nil, err
	}
	return companyFromRecord(rec), nil
}

func (r *companyRepository) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	formula := fmt.Sprintf("{Name} = '%s'", escapeFormulaString(name))
	records, err := r.client.SelectByFormula(ctx, companiesTable, formula)
	if err != nil {
		return nil, fmt.Errorf("select companies by name: %w", err)
	}
	// The API formula comparison is case-insensitive; the exact-equality
	// contract is enforced here.
	for i := range records {
		if stringField(&records[i], "Name") == name {
			return companyFromRecord(&records[i]), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *companyRepository) Create(ctx context.Context, c *domain.Company) error {
	rec, err := r.client.Create(ctx, companiesTable, map[string]any{"Name": c.Name})
	if err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	c.ID = rec.ID
	return nil
}

func companyFromRecord(rec *Record) *domain.Company {
	return &domain.Company{
		ID:   rec.ID,
		Name: stringField(rec, "Name"),
	}
}
