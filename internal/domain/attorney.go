package domain

import (
	"context"
	"time"
)

// Attorney represents a firm attorney who owns contacts and can log in.
// swagger:model Attorney
type Attorney struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// AttorneyRepository defines storage operations for attorneys.
type AttorneyRepository interface {
	GetByID(ctx context.Context, id string) (*Attorney, error)
	GetByEmail(ctx context.Context, email string) (*Attorney, error)
}

// AuthService authenticates attorneys against the record store and issues
// session tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed token plus the
	// authenticated attorney. Returns ErrInvalidCredentials on failure.
	Login(ctx context.Context, email, password string) (string, *Attorney, error)
}

// TokenIssuer issues session tokens (e.g. JWT) for an authenticated attorney.
type TokenIssuer interface {
	Issue(attorneyID, email, name string, expiry time.Duration) (string, error)
}

// TokenVerifier validates a session token and returns the attorney ID it was
// issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// PasswordHasher handles password hashing and verification.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
