package services

import (
	"context"
	"strings"
	"time"

	"attorneycrm/internal/domain"
)

type authService struct {
	attorneys domain.AttorneyRepository
	hasher    domain.PasswordHasher
	issuer    domain.TokenIssuer
	expiry    time.Duration
}

// NewAuthService creates an AuthService that validates credentials against the
// attorney records in the store and issues session tokens.
func NewAuthService(
	attorneys domain.AttorneyRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	expiry time.Duration,
) domain.AuthService {
	return &authService{
		attorneys: attorneys,
		hasher:    hasher,
		issuer:    issuer,
		expiry:    expiry,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Attorney, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	attorney, err := s.attorneys.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if attorney.PasswordHash == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(attorney.PasswordHash, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(attorney.ID, attorney.Email, attorney.Name, s.expiry)
	if err != nil {
		return "", nil, err
	}
	return token, attorney, nil
}
