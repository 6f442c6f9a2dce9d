package services

import (
	"testing"

	"attorneycrm/internal/domain"
)

func viewNames(views []*domain.ContactView) []string {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.FirstName
	}
	return names
}

func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSortContactViews_DirectionReversal(t *testing.T) {
	make3 := func() []*domain.ContactView {
		return []*domain.ContactView{
			{FirstName: "Cid"},
			{FirstName: "Ann"},
			{FirstName: "Bob"},
		}
	}

	asc := make3()
	sortContactViews(asc, "firstName", "asc", false)
	if !equalNames(viewNames(asc), []string{"Ann", "Bob", "Cid"}) {
		t.Fatalf("asc order wrong: %v", viewNames(asc))
	}

	desc := make3()
	sortContactViews(desc, "firstName", "desc", false)
	if !equalNames(viewNames(desc), []string{"Cid", "Bob", "Ann"}) {
		t.Fatalf("desc order wrong: %v", viewNames(desc))
	}
}

func TestSortContactViews_CaseInsensitiveAndMissing(t *testing.T) {
	views := []*domain.ContactView{
		{FirstName: "bob", LastName: "zeta"},
		{FirstName: "Ann", LastName: ""},
		{FirstName: "CID", LastName: "alpha"},
	}
	sortContactViews(views, "lastName", "asc", false)
	// Missing values coerce to "" and sort first ascending.
	if !equalNames(viewNames(views), []string{"Ann", "CID", "bob"}) {
		t.Fatalf("order wrong: %v", viewNames(views))
	}
}

func TestSortContactViews_Stability(t *testing.T) {
	views := []*domain.ContactView{
		{ID: "1", FirstName: "Ann", LastName: "Same"},
		{ID: "2", FirstName: "Bob", LastName: "Same"},
		{ID: "3", FirstName: "Cid", LastName: "Same"},
	}
	sortContactViews(views, "lastName", "asc", false)
	if views[0].ID != "1" || views[1].ID != "2" || views[2].ID != "3" {
		t.Fatalf("stable sort reordered equal keys: %v %v %v", views[0].ID, views[1].ID, views[2].ID)
	}
}

func TestSortContactViews_RSVPGrouping(t *testing.T) {
	views := []*domain.ContactView{
		{FirstName: "d", RSVPStatus: domain.RSVPPending},
		{FirstName: "b", RSVPStatus: domain.RSVPNo},
		{FirstName: "a", RSVPStatus: domain.RSVPYes},
		{FirstName: "e", RSVPStatus: ""},
		{FirstName: "c", RSVPStatus: domain.RSVPNo},
		{FirstName: "f", RSVPStatus: domain.RSVPYes},
	}
	sortContactViews(views, "firstName", "asc", true)
	// Yes group, then No group, then the rest, each sorted by firstName.
	if !equalNames(viewNames(views), []string{"a", "f", "b", "c", "d", "e"}) {
		t.Fatalf("rsvp grouping wrong: %v", viewNames(views))
	}
}

func TestSortContactViews_RSVPGroupingWithoutSecondary(t *testing.T) {
	views := []*domain.ContactView{
		{FirstName: "first-pending", RSVPStatus: domain.RSVPPending},
		{FirstName: "first-yes", RSVPStatus: domain.RSVPYes},
		{FirstName: "second-pending", RSVPStatus: domain.RSVPPending},
		{FirstName: "second-yes", RSVPStatus: domain.RSVPYes},
	}
	sortContactViews(views, "", "asc", true)
	// No secondary field: stability keeps input order within each rank.
	if !equalNames(viewNames(views), []string{"first-yes", "second-yes", "first-pending", "second-pending"}) {
		t.Fatalf("order wrong: %v", viewNames(views))
	}
}

func TestSortContactViews_EndToEndExample(t *testing.T) {
	views := []*domain.ContactView{
		{FirstName: "Bob", RSVPStatus: "No"},
		{FirstName: "Ann", RSVPStatus: "Yes"},
		{FirstName: "Cid", RSVPStatus: ""},
	}
	sortContactViews(views, "firstName", "asc", true)
	if !equalNames(viewNames(views), []string{"Ann", "Bob", "Cid"}) {
		t.Fatalf("expected Ann, Bob, Cid; got %v", viewNames(views))
	}
}

func TestSortContactViews_NoSortFieldNoPriorityIsNoop(t *testing.T) {
	views := []*domain.ContactView{
		{FirstName: "Cid"},
		{FirstName: "Ann"},
	}
	sortContactViews(views, "", "asc", false)
	if !equalNames(viewNames(views), []string{"Cid", "Ann"}) {
		t.Fatalf("expected input order preserved, got %v", viewNames(views))
	}
}
