package postgres

import (
	"context"
	"database/sql"
	"errors"

	"attorneycrm/internal/domain"
)

type attorneyRepository struct {
	DB *sql.DB
}

// NewAttorneyRepository returns an AttorneyRepository backed by Postgres.
func NewAttorneyRepository(db *sql.DB) domain.AttorneyRepository {
	return &attorneyRepository{DB: db}
}

func (r *attorneyRepository) GetByID(ctx context.Context, id string) (*domain.Attorney, error) {
	query := `
		SELECT id, name, email, password_hash
		FROM attorneys
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *attorneyRepository) GetByEmail(ctx context.Context, email string) (*domain.Attorney, error) {
	query := `
		SELECT id, name, email, password_hash
		FROM attorneys
		WHERE LOWER(email) = LOWER($1)
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *attorneyRepository) scanOne(row *sql.Row) (*domain.Attorney, error) {
	a := &domain.Attorney{}
	var hashNull sql.NullString
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &hashNull); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if hashNull.Valid {
		a.PasswordHash = hashNull.String
	}
	return a, nil
}
