package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"attorneycrm/internal/domain"
)

const (
	defaultResolverTTL      = 5 * time.Minute
	defaultResolverCapacity = 1024

	// Placeholder returned when an event reference cannot be resolved.
	unnamedEvent = "Unnamed Event"
)

// RelationFetcher loads referenced records one ID at a time. The Resolver
// only depends on this seam, so a bulk-lookup implementation can replace the
// per-ID repositories without touching the query pipeline.
type RelationFetcher interface {
	FetchCompany(ctx context.Context, id string) (*domain.Company, error)
	FetchEvent(ctx context.Context, id string) (*domain.Event, error)
}

type repoFetcher struct {
	companies domain.CompanyRepository
	events    domain.EventRepository
}

// NewRepositoryFetcher returns a RelationFetcher that reads straight from the
// repositories.
func NewRepositoryFetcher(companies domain.CompanyRepository, events domain.EventRepository) RelationFetcher {
	return &repoFetcher{companies: companies, events: events}
}

func (f *repoFetcher) FetchCompany(ctx context.Context, id string) (*domain.Company, error) {
	return f.companies.GetByID(ctx, id)
}

func (f *repoFetcher) FetchEvent(ctx context.Context, id string) (*domain.Event, error) {
	return f.events.GetByID(ctx, id)
}

// ResolverConfig tunes the Resolver's cache. Zero values select defaults; Now
// exists so tests can drive expiry with a fake clock.
type ResolverConfig struct {
	TTL      time.Duration
	Capacity int
	Now      func() time.Time
}

type cachedRef struct {
	name    string
	expires time.Time
}

// Resolver turns company and event references into display values, caching
// results for a freshness window. Lookup failures degrade to placeholders and
// never fail the caller. Entries are immutable per ID, so racing fills are
// last-write-wins.
type Resolver struct {
	fetcher  RelationFetcher
	logger   *slog.Logger
	ttl      time.Duration
	capacity int
	now      func() time.Time

	mu        sync.Mutex
	companies map[string]cachedRef
	events    map[string]cachedRef
}

// NewResolver creates a Resolver over the given fetcher.
func NewResolver(fetcher RelationFetcher, logger *slog.Logger, cfg ResolverConfig) *Resolver {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultResolverTTL
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = defaultResolverCapacity
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Resolver{
		fetcher:   fetcher,
		logger:    logger,
		ttl:       cfg.TTL,
		capacity:  cfg.Capacity,
		now:       cfg.Now,
		companies: make(map[string]cachedRef),
		events:    make(map[string]cachedRef),
	}
}

// ResolveCompany returns the display value for a company reference. On lookup
// failure it returns {id, ""}.
func (r *Resolver) ResolveCompany(ctx context.Context, id string) domain.CompanyRef {
	if name, ok := r.cached(r.companies, id); ok {
		return domain.CompanyRef{ID: id, Name: name}
	}
	company, err := r.fetcher.FetchCompany(ctx, id)
	if err != nil {
		r.logger.WarnContext(ctx, "company resolution failed", "company_id", id, "err", err)
		return domain.CompanyRef{ID: id, Name: ""}
	}
	r.store(r.companies, id, company.Name)
	return domain.CompanyRef{ID: id, Name: company.Name}
}

// ResolveEvent returns the display value for an event reference. On lookup
// failure it returns {id, "Unnamed Event"}.
func (r *Resolver) ResolveEvent(ctx context.Context, id string) domain.EventRef {
	if name, ok := r.cached(r.events, id); ok {
		return domain.EventRef{ID: id, Name: name}
	}
	event, err := r.fetcher.FetchEvent(ctx, id)
	if err != nil {
		r.logger.WarnContext(ctx, "event resolution failed", "event_id", id, "err", err)
		return domain.EventRef{ID: id, Name: unnamedEvent}
	}
	name := event.Name
	if name == "" {
		name = unnamedEvent
	}
	r.store(r.events, id, name)
	return domain.EventRef{ID: id, Name: name}
}

func (r *Resolver) cached(m map[string]cachedRef, id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := m[id]
	if !ok {
		return "", false
	}
	if r.now().After(entry.expires) {
		delete(m, id)
		return "", false
	}
	return entry.name, true
}

func (r *Resolver) store(m map[string]cachedRef, id, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(m) >= r.capacity {
		now := r.now()
		for k, entry := range m {
			if now.After(entry.expires) {
				delete(m, k)
			}
		}
		// Still full after sweeping: flush wholesale rather than tracking
		// per-entry age. Entries are cheap to refetch.
		if len(m) >= r.capacity {
			clear(m)
		}
	}
	m[id] = cachedRef{name: name, expires: r.now().Add(r.ttl)}
}
