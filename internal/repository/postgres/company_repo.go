package postgres

import (
	"context"
	"database/sql"
	"errors"

	"attorneycrm/internal/domain"
)

type companyRepository struct {
	DB *sql.DB
}

// NewCompanyRepository returns a CompanyRepository backed by Postgres.
func NewCompanyRepository(db *sql.DB) domain.CompanyRepository {
	return &companyRepository{DB: db}
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `SELECT id, name FROM companies WHERE id = $1`
	c := &domain.Company{}
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *companyRepository) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	// Exact, case-sensitive match.
	query := `SELECT id, name FROM companies WHERE name = $1`
	c := &domain.Company{}
	if err := r.DB.QueryRowContext(ctx, query, name).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *companyRepository) Create(ctx context.Context, c *domain.Company) error {
	query := `
		INSERT INTO companies (name, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.Name).Scan(&c.ID)
}
