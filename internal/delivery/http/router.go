package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"attorneycrm/internal/delivery/http/controllers"
	"attorneycrm/internal/delivery/http/middleware"
	"attorneycrm/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	authController *controllers.AuthController,
	contactController *controllers.ContactController,
	eventController *controllers.EventController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("GET /auth/verify", requireAuth(authController.Verify))

	// Contacts
	mux.HandleFunc("GET /contacts", requireAuth(contactController.ListContacts))
	mux.HandleFunc("GET /contacts/events/{eventID}", requireAuth(contactController.ListEventContacts))
	mux.HandleFunc("POST /contacts", requireAuth(contactController.CreateContact))
	mux.HandleFunc("POST /contacts/events", requireAuth(contactController.AddToEvent))

	// Events
	mux.HandleFunc("GET /events", requireAuth(eventController.ListEvents))
	mux.HandleFunc("GET /events/upcoming", requireAuth(eventController.ListUpcomingEvents))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
