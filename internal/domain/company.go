package domain

import "context"

// Company represents a contact's employer.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompanyRef is the resolved display shape of a company reference.
type CompanyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompanyRepository defines storage operations for companies.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*Company, error)
	// GetByName matches by exact, case-sensitive name equality and returns
	// ErrNotFound when no company matches.
	GetByName(ctx context.Context, name string) (*Company, error)
	Create(ctx context.Context, company *Company) error
}
