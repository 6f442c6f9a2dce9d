package middleware

import (
	"context"
	"net/http"
	"strings"

	h "attorneycrm/internal/delivery/http/helpers"
	"attorneycrm/internal/domain"
)

type contextKey string

const attorneyIDKey contextKey = "attorneyID"

// SetAttorneyID returns a context with the attorney ID set. Used by the auth
// middleware and by tests.
func SetAttorneyID(ctx context.Context, attorneyID string) context.Context {
	return context.WithValue(ctx, attorneyIDKey, attorneyID)
}

// AttorneyIDFromContext returns the authenticated attorney ID from the
// context, if present.
func AttorneyIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(attorneyIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// attorney ID in the request context. If the token is missing or invalid, it
// responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			attorneyID, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetAttorneyID(r.Context(), attorneyID))
			next(w, r)
		}
	}
}
