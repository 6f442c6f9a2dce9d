package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"attorneycrm/internal/delivery/http/helpers"
	"attorneycrm/internal/delivery/http/middleware"
	"attorneycrm/internal/domain"
)

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// ListContacts godoc
// @Summary List contacts for the authenticated attorney
// @Description Returns a page of contacts with resolved company and event names. Scoped to the attorney's own contacts unless allAttorneys=true.
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-indexed, default 1)"
// @Param limit query int false "Page size (default 50)"
// @Param sortBy query string false "View attribute to sort by (e.g. firstName, lastName, companyName)"
// @Param sortDirection query string false "asc or desc (default asc)"
// @Param allAttorneys query bool false "Include contacts of all attorneys"
// @Param prioritizeRSVPs query bool false "Sort RSVP Yes before No before Pending"
// @Success 200 {object} helpers.APIResponse "data contains contacts and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contacts [get]
func (c *ContactController) ListContacts(w http.ResponseWriter, r *http.Request) {
	c.listContacts(w, r, "")
}

// ListEventContacts godoc
// @Summary List contacts associated with an event
// @Description Same as the contact list but restricted to contacts linked to the event, with RSVP status and attendance attached.
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param page query int false "Page number (1-indexed, default 1)"
// @Param limit query int false "Page size (default 50)"
// @Param sortBy query string false "View attribute to sort by"
// @Param sortDirection query string false "asc or desc (default asc)"
// @Param allAttorneys query bool false "Include contacts of all attorneys"
// @Param prioritizeRSVPs query bool false "Sort RSVP Yes before No before Pending"
// @Success 200 {object} helpers.APIResponse "data contains contacts and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contacts/events/{eventID} [get]
func (c *ContactController) ListEventContacts(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	c.listContacts(w, r, eventID)
}

func (c *ContactController) listContacts(w http.ResponseWriter, r *http.Request, eventID string) {
	attorneyID, ok := middleware.AttorneyIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	q := helpers.ParseContactListQuery(r)
	q.AttorneyID = attorneyID
	q.EventID = eventID

	page, err := c.Service.ListContacts(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}

// CreateContactRequest is the request body for POST /contacts.
type CreateContactRequest struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	CompanyName    string   `json:"companyName"`
	Email          string   `json:"email"`
	SelectedEvents []string `json:"selectedEvents"`
}

// Validate implements helpers.Validator.
func (r *CreateContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "lastName is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// CreateContactResponse is the data payload for a successful contact creation.
type CreateContactResponse struct {
	ContactID string `json:"contactId"`
}

// CreateContact godoc
// @Summary Create a contact
// @Description Creates a contact owned by the authenticated attorney. When companyName is given, an existing company with that exact name is linked, or a new one is created.
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateContactRequest true "Contact fields"
// @Success 201 {object} helpers.APIResponse "data contains the new contactId"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contacts [post]
func (c *ContactController) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	attorneyID, ok := middleware.AttorneyIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	contact, err := c.Service.CreateContact(r.Context(), attorneyID, domain.NewContactInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		EventIDs:    req.SelectedEvents,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateContactResponse{ContactID: contact.ID})
}

// AddToEventRequest is the request body for POST /contacts/events.
type AddToEventRequest struct {
	ContactID string `json:"contactId"`
	EventID   string `json:"eventId"`
}

// Validate implements helpers.Validator.
func (r *AddToEventRequest) Validate() []string {
	var errs []string
	if r.ContactID == "" {
		errs = append(errs, "contactId is required")
	}
	if r.EventID == "" {
		errs = append(errs, "eventId is required")
	}
	return errs
}

// AddToEvent godoc
// @Summary Add a contact to an event
// @Description Records a Pending RSVP linking the contact to the event and sends a best-effort invitation email.
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.AddToEventRequest true "Contact and event IDs"
// @Success 201 {object} helpers.APIResponse "data contains the created RSVP"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contacts/events [post]
func (c *ContactController) AddToEvent(w http.ResponseWriter, r *http.Request) {
	var req AddToEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	if _, ok := middleware.AttorneyIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	rsvp, err := c.Service.AddContactToEvent(r.Context(), req.ContactID, req.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, rsvp)
}
