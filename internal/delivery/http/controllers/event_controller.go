package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"attorneycrm/internal/delivery/http/helpers"
	"attorneycrm/internal/delivery/http/middleware"
	"attorneycrm/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{Logger: logger, Service: svc}
}

// ListEvents godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, c.Service.ListEvents)
}

// ListUpcomingEvents godoc
// @Summary List upcoming events
// @Description Returns events dated today or later plus undated events, soonest first. Used when adding a contact to events.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/upcoming [get]
func (c *EventController) ListUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, c.Service.ListUpcomingEvents)
}

func (c *EventController) list(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context) ([]*domain.Event, error)) {
	if _, ok := middleware.AttorneyIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	events, err := fn(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
