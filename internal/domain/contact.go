package domain

import "context"

// Contact represents a CRM contact as stored in the record store. Reference
// fields hold record IDs; resolution into display values happens in the
// contact service.
type Contact struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	CompanyID   string
	EventIDs    []string
	AttorneyIDs []string
}

// ContactView is the denormalized contact shape returned by list queries.
// Attended is only set for event-scoped queries.
// swagger:model ContactView
type ContactView struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	CompanyName string     `json:"companyName"`
	Events      []EventRef `json:"events"`
	RSVPStatus  string     `json:"rsvpStatus"`
	Attended    *bool      `json:"attended,omitempty"`
}

// ContactListQuery holds the parameters of a contact list request.
type ContactListQuery struct {
	// AttorneyID scopes results to contacts owned by this attorney unless
	// AllAttorneys is set.
	AttorneyID   string
	AllAttorneys bool

	// EventID, when non-empty, restricts results to contacts associated with
	// the event and attaches RSVP status and attendance.
	EventID string

	SortBy          string
	SortDirection   string
	PrioritizeRSVPs bool

	Page  int
	Limit int
}

// ContactPage is the result of a contact list query.
// swagger:model ContactPage
type ContactPage struct {
	Contacts   []*ContactView `json:"contacts"`
	Pagination PageInfo       `json:"pagination"`
}

// NewContactInput holds the fields for creating a contact.
type NewContactInput struct {
	FirstName   string
	LastName    string
	CompanyName string
	Email       string
	EventIDs    []string
}

// ContactRepository defines storage operations for contacts.
type ContactRepository interface {
	ListAll(ctx context.Context) ([]*Contact, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	Create(ctx context.Context, contact *Contact) error
}

// ContactService defines contact-facing operations.
type ContactService interface {
	// ListContacts runs the query pipeline: scope filter, optional event
	// filter with RSVP attachment, relation resolution, sort, paginate.
	ListContacts(ctx context.Context, q ContactListQuery) (*ContactPage, error)
	// CreateContact creates a contact owned by the attorney, looking up or
	// creating the company by exact name when one is given.
	CreateContact(ctx context.Context, attorneyID string, in NewContactInput) (*Contact, error)
	// AddContactToEvent records an RSVP (status Pending) linking the contact
	// to the event and sends a best-effort invitation email.
	AddContactToEvent(ctx context.Context, contactID, eventID string) (*RSVP, error)
}
