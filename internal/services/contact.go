package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"attorneycrm/internal/domain"
)

// resolveBatchSize bounds the fan-out of relation resolution across contacts.
const resolveBatchSize = 10

type contactService struct {
	contacts  domain.ContactRepository
	companies domain.CompanyRepository
	events    domain.EventRepository
	rsvps     domain.RSVPRepository
	resolver  *Resolver
	mailer    domain.Mailer
	logger    *slog.Logger
}

// NewContactService creates a ContactService with the given repositories. The
// mailer may be nil, which disables invitation emails.
func NewContactService(
	contacts domain.ContactRepository,
	companies domain.CompanyRepository,
	events domain.EventRepository,
	rsvps domain.RSVPRepository,
	resolver *Resolver,
	mailer domain.Mailer,
	logger *slog.Logger,
) domain.ContactService {
	return &contactService{
		contacts:  contacts,
		companies: companies,
		events:    events,
		rsvps:     rsvps,
		resolver:  resolver,
		mailer:    mailer,
		logger:    logger,
	}
}

func (s *contactService) ListContacts(ctx context.Context, q domain.ContactListQuery) (*domain.ContactPage, error) {
	if q.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", domain.ErrInvalidInput, q.Limit)
	}
	if q.Page < 1 {
		return nil, fmt.Errorf("%w: page must be at least 1, got %d", domain.ErrInvalidInput, q.Page)
	}
	if q.SortDirection != "desc" {
		q.SortDirection = "asc"
	}

	contacts, rsvpsByContact, err := s.fetchScoped(ctx, q)
	if err != nil {
		return nil, err
	}

	views := s.resolveViews(ctx, contacts, rsvpsByContact, q.EventID != "")

	sortContactViews(views, q.SortBy, q.SortDirection, q.PrioritizeRSVPs)

	total := len(views)
	info := domain.NewPageInfo(q.Page, q.Limit, total)
	info.SortBy = q.SortBy
	info.SortDirection = q.SortDirection
	info.PrioritizeRSVPs = q.PrioritizeRSVPs

	start := (q.Page - 1) * q.Limit
	end := start + q.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &domain.ContactPage{
		Contacts:   views[start:end],
		Pagination: info,
	}, nil
}

// fetchScoped loads the raw contacts and applies the attorney and event
// filters. For event-scoped queries contacts and RSVPs are fetched in
// parallel and the event's RSVPs are returned keyed by contact ID.
func (s *contactService) fetchScoped(ctx context.Context, q domain.ContactListQuery) ([]*domain.Contact, map[string]*domain.RSVP, error) {
	var (
		contacts []*domain.Contact
		rsvps    []*domain.RSVP
		cErr     error
		rErr     error
	)
	if q.EventID == "" {
		contacts, cErr = s.contacts.ListAll(ctx)
	} else {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			contacts, cErr = s.contacts.ListAll(ctx)
		}()
		go func() {
			defer wg.Done()
			rsvps, rErr = s.rsvps.ListAll(ctx)
		}()
		wg.Wait()
	}
	if cErr != nil {
		return nil, nil, fmt.Errorf("list contacts: %w", cErr)
	}
	if rErr != nil {
		return nil, nil, fmt.Errorf("list rsvps: %w", rErr)
	}

	filtered := make([]*domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if !q.AllAttorneys && !slices.Contains(c.AttorneyIDs, q.AttorneyID) {
			continue
		}
		if q.EventID != "" && !slices.Contains(c.EventIDs, q.EventID) {
			continue
		}
		filtered = append(filtered, c)
	}

	if q.EventID == "" {
		return filtered, nil, nil
	}

	byContact := make(map[string]*domain.RSVP)
	for _, rsvp := range rsvps {
		if rsvp.EventID == q.EventID {
			byContact[rsvp.ContactID] = rsvp
		}
	}
	return filtered, byContact, nil
}

// resolveViews builds denormalized views for every contact, fanning out
// relation resolution in bounded batches. Output order matches input order
// regardless of completion order.
func (s *contactService) resolveViews(ctx context.Context, contacts []*domain.Contact, rsvpsByContact map[string]*domain.RSVP, eventScoped bool) []*domain.ContactView {
	views := make([]*domain.ContactView, len(contacts))
	for start := 0; start < len(contacts); start += resolveBatchSize {
		end := min(start+resolveBatchSize, len(contacts))
		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				views[i] = s.buildView(ctx, contacts[i], rsvpsByContact, eventScoped)
			}()
		}
		wg.Wait()
	}
	return views
}

func (s *contactService) buildView(ctx context.Context, c *domain.Contact, rsvpsByContact map[string]*domain.RSVP, eventScoped bool) *domain.ContactView {
	view := &domain.ContactView{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Events:     make([]domain.EventRef, 0, len(c.EventIDs)),
		RSVPStatus: domain.RSVPPending,
	}

	if c.CompanyID != "" {
		view.CompanyName = s.resolver.ResolveCompany(ctx, c.CompanyID).Name
	}
	for _, eventID := range c.EventIDs {
		view.Events = append(view.Events, s.resolver.ResolveEvent(ctx, eventID))
	}

	if eventScoped {
		attended := false
		if rsvp := rsvpsByContact[c.ID]; rsvp != nil {
			if rsvp.Status != "" {
				view.RSVPStatus = rsvp.Status
			}
			attended = rsvp.Attended
		}
		view.Attended = &attended
	}
	return view
}

func (s *contactService) CreateContact(ctx context.Context, attorneyID string, in domain.NewContactInput) (*domain.Contact, error) {
	contact := &domain.Contact{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       strings.TrimSpace(in.Email),
		EventIDs:    in.EventIDs,
		AttorneyIDs: []string{attorneyID},
	}

	// Company handling is best effort: a failure here drops the association
	// but never blocks contact creation.
	if name := strings.TrimSpace(in.CompanyName); name != "" {
		company, err := s.companies.GetByName(ctx, name)
		if errors.Is(err, domain.ErrNotFound) {
			company = &domain.Company{Name: name}
			err = s.companies.Create(ctx, company)
		}
		if err != nil {
			s.logger.WarnContext(ctx, "company lookup-or-create failed", "company_name", name, "err", err)
		} else {
			contact.CompanyID = company.ID
		}
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) AddContactToEvent(ctx context.Context, contactID, eventID string) (*domain.RSVP, error) {
	if contactID == "" || eventID == "" {
		return nil, fmt.Errorf("%w: contact and event are required", domain.ErrInvalidInput)
	}

	rsvp := &domain.RSVP{
		ContactID: contactID,
		EventID:   eventID,
		Status:    domain.RSVPPending,
	}
	if err := s.rsvps.Create(ctx, rsvp); err != nil {
		return nil, fmt.Errorf("create rsvp: %w", err)
	}

	s.sendInvitation(ctx, contactID, eventID)
	return rsvp, nil
}

// sendInvitation emails the contact about the event. Every failure is logged
// and swallowed; the RSVP has already been recorded.
func (s *contactService) sendInvitation(ctx context.Context, contactID, eventID string) {
	if s.mailer == nil {
		return
	}
	contact, err := s.contacts.GetByID(ctx, contactID)
	if err != nil || contact.Email == "" {
		if err != nil {
			s.logger.WarnContext(ctx, "invitation skipped: contact lookup failed", "contact_id", contactID, "err", err)
		}
		return
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		s.logger.WarnContext(ctx, "invitation skipped: event lookup failed", "event_id", eventID, "err", err)
		return
	}

	eventName := event.Name
	if eventName == "" {
		eventName = unnamedEvent
	}
	subject := fmt.Sprintf("You're invited: %s", eventName)
	text := fmt.Sprintf("Hello %s,\n\nYou have been invited to %s.", contact.FirstName, eventName)
	if event.Date != nil {
		text += fmt.Sprintf(" The event takes place on %s.", event.Date.Format("January 2, 2006"))
	}
	if err := s.mailer.Send(contact.Email, subject, "", text); err != nil {
		s.logger.WarnContext(ctx, "invitation email failed", "contact_id", contactID, "event_id", eventID, "err", err)
	}
}
