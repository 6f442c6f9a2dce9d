package helpers

import (
	"net/http"
	"strconv"

	"attorneycrm/internal/domain"
)

// Contact list query parameter defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// ParseContactListQuery reads the contact list parameters from the request
// query string. Missing or non-numeric page/limit values fall back to
// defaults; explicit out-of-range values are passed through so the service
// can reject them with a descriptive error.
func ParseContactListQuery(r *http.Request) domain.ContactListQuery {
	q := domain.ContactListQuery{
		Page:            DefaultPage,
		Limit:           DefaultLimit,
		SortBy:          r.URL.Query().Get("sortBy"),
		SortDirection:   r.URL.Query().Get("sortDirection"),
		AllAttorneys:    r.URL.Query().Get("allAttorneys") == "true",
		PrioritizeRSVPs: r.URL.Query().Get("prioritizeRSVPs") == "true",
	}
	if q.SortDirection == "" {
		q.SortDirection = "asc"
	}
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			q.Page = v
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			q.Limit = v
		}
	}
	return q
}
