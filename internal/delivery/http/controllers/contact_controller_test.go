package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"attorneycrm/internal/delivery/http/helpers"
	"attorneycrm/internal/delivery/http/middleware"
	"attorneycrm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeContactService implements domain.ContactService for handler tests.
type fakeContactService struct {
	listErr           error
	listResult        *domain.ContactPage
	lastListQuery     domain.ContactListQuery
	createErr         error
	createResult      *domain.Contact
	lastCreateOwnerID string
	lastCreateInput   domain.NewContactInput
	addErr            error
	addResult         *domain.RSVP
	lastAddContactID  string
	lastAddEventID    string
}

func (f *fakeContactService) ListContacts(ctx context.Context, q domain.ContactListQuery) (*domain.ContactPage, error) {
	f.lastListQuery = q
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResult != nil {
		return f.listResult, nil
	}
	return &domain.ContactPage{Contacts: []*domain.ContactView{}}, nil
}

func (f *fakeContactService) CreateContact(ctx context.Context, attorneyID string, in domain.NewContactInput) (*domain.Contact, error) {
	f.lastCreateOwnerID = attorneyID
	f.lastCreateInput = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	return &domain.Contact{ID: "c-created"}, nil
}

func (f *fakeContactService) AddContactToEvent(ctx context.Context, contactID, eventID string) (*domain.RSVP, error) {
	f.lastAddContactID = contactID
	f.lastAddEventID = eventID
	if f.addErr != nil {
		return nil, f.addErr
	}
	if f.addResult != nil {
		return f.addResult, nil
	}
	return &domain.RSVP{ID: "rsvp-created", ContactID: contactID, EventID: eventID, Status: domain.RSVPPending}, nil
}

func TestContactController_ListContacts(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		noAuthContext  bool
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkQuery     func(t *testing.T, q domain.ContactListQuery)
	}{
		{
			name:       "success with defaults",
			target:     "/contacts",
			wantStatus: http.StatusOK,
			checkQuery: func(t *testing.T, q domain.ContactListQuery) {
				assert.Equal(t, "atty-123", q.AttorneyID)
				assert.Empty(t, q.EventID)
				assert.Equal(t, helpers.DefaultPage, q.Page)
				assert.Equal(t, helpers.DefaultLimit, q.Limit)
				assert.Equal(t, "asc", q.SortDirection)
				assert.False(t, q.AllAttorneys)
			},
		},
		{
			name:       "query parameters forwarded",
			target:     "/contacts?page=3&limit=10&sortBy=lastName&sortDirection=desc&allAttorneys=true&prioritizeRSVPs=true",
			wantStatus: http.StatusOK,
			checkQuery: func(t *testing.T, q domain.ContactListQuery) {
				assert.Equal(t, 3, q.Page)
				assert.Equal(t, 10, q.Limit)
				assert.Equal(t, "lastName", q.SortBy)
				assert.Equal(t, "desc", q.SortDirection)
				assert.True(t, q.AllAttorneys)
				assert.True(t, q.PrioritizeRSVPs)
			},
		},
		{
			name:           "no attorney in context",
			target:         "/contacts",
			noAuthContext:  true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "invalid input from service",
			target:         "/contacts?limit=-1",
			fakeErr:        fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "limit must be positive",
		},
		{
			name:           "service error",
			target:         "/contacts",
			fakeErr:        errors.New("store unreachable"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "store unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeContactService{listErr: tt.fakeErr}
			ctrl := NewContactController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if !tt.noAuthContext {
				req = req.WithContext(middleware.SetAttorneyID(req.Context(), "atty-123"))
			}
			rr := httptest.NewRecorder()

			ctrl.ListContacts(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error, "success response must have error nil")
				if tt.checkQuery != nil {
					tt.checkQuery(t, fake.lastListQuery)
				}
			} else {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestContactController_ListEventContacts(t *testing.T) {
	tests := []struct {
		name           string
		eventID        string
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			eventID:    "ev-1",
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing eventID",
			eventID:        "",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "missing eventID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeContactService{}
			ctrl := NewContactController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/contacts/events/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			req = req.WithContext(middleware.SetAttorneyID(req.Context(), "atty-123"))
			rr := httptest.NewRecorder()

			ctrl.ListEventContacts(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				assert.Equal(t, "ev-1", fake.lastListQuery.EventID)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestContactController_CreateContact(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		noAuthContext  bool
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkCall      func(t *testing.T, fake *fakeContactService)
	}{
		{
			name:       "success",
			body:       `{"firstName":"Ann","lastName":"Park","companyName":"Acme LLP","email":"ann@example.com","selectedEvents":["ev-1"]}`,
			wantStatus: http.StatusCreated,
			checkCall: func(t *testing.T, fake *fakeContactService) {
				assert.Equal(t, "atty-123", fake.lastCreateOwnerID)
				assert.Equal(t, "Ann", fake.lastCreateInput.FirstName)
				assert.Equal(t, "Acme LLP", fake.lastCreateInput.CompanyName)
				assert.Equal(t, []string{"ev-1"}, fake.lastCreateInput.EventIDs)
			},
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
			noAuthContext:  true, // decode fails before we check context
		},
		{
			name:           "missing firstName",
			body:           `{"lastName":"Park","email":"ann@example.com"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "firstName is required",
		},
		{
			name:           "missing email",
			body:           `{"firstName":"Ann","lastName":"Park"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email is required",
		},
		{
			name:           "unknown field rejected",
			body:           `{"firstName":"Ann","lastName":"Park","email":"a@b.c","id":"custom"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "no attorney in context",
			body:           `{"firstName":"Ann","lastName":"Park","email":"ann@example.com"}`,
			noAuthContext:  true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "service error",
			body:           `{"firstName":"Ann","lastName":"Park","email":"ann@example.com"}`,
			fakeErr:        errors.New("store error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "store error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeContactService{createErr: tt.fakeErr}
			ctrl := NewContactController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/contacts", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if !tt.noAuthContext {
				req = req.WithContext(middleware.SetAttorneyID(req.Context(), "atty-123"))
			}
			rr := httptest.NewRecorder()

			ctrl.CreateContact(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var resp CreateContactResponse
				require.NoError(t, json.Unmarshal(dataBytes, &resp))
				assert.Equal(t, "c-created", resp.ContactID)
				if tt.checkCall != nil {
					tt.checkCall(t, fake)
				}
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestContactController_AddToEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		noAuthContext  bool
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"contactId":"c-1","eventId":"ev-1"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "missing contactId",
			body:           `{"eventId":"ev-1"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "contactId is required",
		},
		{
			name:           "missing eventId",
			body:           `{"contactId":"c-1"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "eventId is required",
		},
		{
			name:           "no attorney in context",
			body:           `{"contactId":"c-1","eventId":"ev-1"}`,
			noAuthContext:  true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "service error",
			body:           `{"contactId":"c-1","eventId":"ev-1"}`,
			fakeErr:        errors.New("store error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "store error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeContactService{addErr: tt.fakeErr}
			ctrl := NewContactController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/contacts/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if !tt.noAuthContext {
				req = req.WithContext(middleware.SetAttorneyID(req.Context(), "atty-123"))
			}
			rr := httptest.NewRecorder()

			ctrl.AddToEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				assert.Equal(t, "c-1", fake.lastAddContactID)
				assert.Equal(t, "ev-1", fake.lastAddEventID)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var rsvp domain.RSVP
				require.NoError(t, json.Unmarshal(dataBytes, &rsvp))
				assert.Equal(t, domain.RSVPPending, rsvp.Status)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}
