package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"attorneycrm/internal/domain"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

type jwtTokens struct {
	secret []byte
}

// NewJWTTokens returns a token issuer/verifier that signs session JWTs with
// HS256 using the given secret. The subject claim carries the attorney ID.
func NewJWTTokens(secret string) interface {
	domain.TokenIssuer
	domain.TokenVerifier
} {
	return &jwtTokens{secret: []byte(secret)}
}

func (t *jwtTokens) Issue(attorneyID, email, name string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   attorneyID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email: email,
		Name:  name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (t *jwtTokens) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}
