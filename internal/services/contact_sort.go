package services

import (
	"sort"
	"strings"

	"attorneycrm/internal/domain"
)

// rsvpRank orders RSVP statuses for prioritized sorting: Yes above No above
// everything else (Pending, missing, or free-form values).
func rsvpRank(status string) int {
	switch status {
	case domain.RSVPYes:
		return 3
	case domain.RSVPNo:
		return 2
	default:
		return 1
	}
}

// sortValue extracts the sortable value of a view attribute. String fields
// compare case-insensitively; unknown or absent fields coerce to "".
func sortValue(v *domain.ContactView, field string) string {
	var s string
	switch field {
	case "firstName":
		s = v.FirstName
	case "lastName":
		s = v.LastName
	case "email":
		s = v.Email
	case "companyName":
		s = v.CompanyName
	case "rsvpStatus":
		s = v.RSVPStatus
	case "id":
		s = v.ID
	}
	return strings.ToLower(s)
}

// compareViews is the three-way comparison used for both the plain sort and
// the secondary tie-break: -1/0/1, negated for descending order.
func compareViews(a, b *domain.ContactView, sortBy, direction string) int {
	cmp := strings.Compare(sortValue(a, sortBy), sortValue(b, sortBy))
	if direction == "desc" {
		cmp = -cmp
	}
	return cmp
}

// sortContactViews sorts views in place. With prioritizeRSVPs the primary key
// is RSVP rank descending and sortBy only breaks ties; otherwise sortBy is the
// whole ordering. The sort is stable so equal keys keep their input order.
func sortContactViews(views []*domain.ContactView, sortBy, direction string, prioritizeRSVPs bool) {
	if prioritizeRSVPs {
		sort.SliceStable(views, func(i, j int) bool {
			ri, rj := rsvpRank(views[i].RSVPStatus), rsvpRank(views[j].RSVPStatus)
			if ri != rj {
				return ri > rj
			}
			if sortBy == "" {
				return false
			}
			return compareViews(views[i], views[j], sortBy, direction) < 0
		})
		return
	}
	if sortBy == "" {
		return
	}
	sort.SliceStable(views, func(i, j int) bool {
		return compareViews(views[i], views[j], sortBy, direction) < 0
	})
}
