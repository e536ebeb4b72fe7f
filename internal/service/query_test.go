package service_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"racecontrol/internal/domain"
	"racecontrol/internal/service"
)

func makeIncidents(n int) []domain.Incident {
	incidents := make([]domain.Incident, 0, n)
	for i := 0; i < n; i++ {
		incidents = append(incidents, domain.Incident{
			ID:           fmt.Sprintf("incident-%d", i),
			Type:         domain.TypeCollision,
			RaceCategory: domain.CategoryF1,
			Severity:     domain.SeverityLow,
			Status:       domain.StatusPending,
			Location:     "Monte Carlo",
			Circuit:      "Monaco",
		})
	}
	return incidents
}

func TestFilterIncidents_SearchSubstringCaseInsensitive(t *testing.T) {
	t.Parallel()

	incidents := []domain.Incident{
		{ID: "a", Circuit: "Monaco", RaceCategory: domain.CategoryF1},
		{ID: "b", Circuit: "Silverstone", RaceCategory: domain.CategoryF1},
	}

	for _, tc := range []struct {
		search string
		want   []string
	}{
		{"mon", []string{"a"}},
		{"MONACO", []string{"a"}},
		{" monaco ", []string{"a"}},
		{"monza", nil},
	} {
		t.Run(fmt.Sprintf("search=%q", tc.search), func(t *testing.T) {
			got := service.FilterIncidents(incidents, domain.IncidentQuery{Search: tc.search})
			var ids []string
			for _, inc := range got.Incidents {
				ids = append(ids, inc.ID)
			}
			if diff := cmp.Diff(tc.want, ids); diff != "" {
				t.Fatalf("incident ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterIncidents_SearchMatchesDriversAndType(t *testing.T) {
	t.Parallel()

	incidents := []domain.Incident{
		{ID: "a", Type: domain.TypeTrackObstruction, Drivers: []string{"Max Verstappen"}},
		{ID: "b", Type: domain.TypeCollision, Drivers: []string{"Lando Norris"}},
	}

	// Underscores in the type are searchable as spaces.
	got := service.FilterIncidents(incidents, domain.IncidentQuery{Search: "track obstruction"})
	if len(got.Incidents) != 1 || got.Incidents[0].ID != "a" {
		t.Fatalf("expected only incident a, got %+v", got.Incidents)
	}

	got = service.FilterIncidents(incidents, domain.IncidentQuery{Search: "verstappen"})
	if len(got.Incidents) != 1 || got.Incidents[0].ID != "a" {
		t.Fatalf("expected driver match on a, got %+v", got.Incidents)
	}
}

func TestFilterIncidents_PaginationMath(t *testing.T) {
	t.Parallel()

	const total = 25
	incidents := makeIncidents(total)

	for _, tc := range []struct {
		page, limit int
		wantLen     int
		wantNext    bool
		wantPrev    bool
	}{
		{1, 10, 10, true, false},
		{2, 10, 10, true, true},
		{3, 10, 5, false, true},
		{1, 100, 25, false, false},
	} {
		t.Run(fmt.Sprintf("page=%d,limit=%d", tc.page, tc.limit), func(t *testing.T) {
			got := service.FilterIncidents(incidents, domain.IncidentQuery{Page: tc.page, Limit: tc.limit})
			if len(got.Incidents) != tc.wantLen {
				t.Fatalf("page size = %d, want %d", len(got.Incidents), tc.wantLen)
			}
			if got.Pagination.HasNext != tc.wantNext {
				t.Fatalf("hasNext = %v, want %v", got.Pagination.HasNext, tc.wantNext)
			}
			if got.Pagination.HasPrev != tc.wantPrev {
				t.Fatalf("hasPrev = %v, want %v", got.Pagination.HasPrev, tc.wantPrev)
			}
			if got.Counts.Showing != tc.wantLen {
				t.Fatalf("showing = %d, want %d", got.Counts.Showing, tc.wantLen)
			}
		})
	}
}

func TestFilterIncidents_ClampsPageAndLimit(t *testing.T) {
	t.Parallel()

	incidents := makeIncidents(5)

	got := service.FilterIncidents(incidents, domain.IncidentQuery{Page: 0, Limit: 0})
	if got.Pagination.Page != 1 || got.Pagination.Limit != 10 {
		t.Fatalf("expected page=1 limit=10, got page=%d limit=%d", got.Pagination.Page, got.Pagination.Limit)
	}

	got = service.FilterIncidents(incidents, domain.IncidentQuery{Page: -3, Limit: 500})
	if got.Pagination.Page != 1 || got.Pagination.Limit != 100 {
		t.Fatalf("expected page=1 limit=100, got page=%d limit=%d", got.Pagination.Page, got.Pagination.Limit)
	}
}

func TestFilterIncidents_PageBeyondEndIsEmpty(t *testing.T) {
	t.Parallel()

	got := service.FilterIncidents(makeIncidents(5), domain.IncidentQuery{Page: 3, Limit: 10})
	if len(got.Incidents) != 0 {
		t.Fatalf("expected empty page, got %d incidents", len(got.Incidents))
	}
	if got.Counts.Showing != 0 || got.Counts.Filtered != 5 {
		t.Fatalf("unexpected counts: %+v", got.Counts)
	}
}

func TestFilterIncidents_PreservesCollectionOrder(t *testing.T) {
	t.Parallel()

	incidents := makeIncidents(4)
	got := service.FilterIncidents(incidents, domain.IncidentQuery{Page: 1, Limit: 10})

	for i, inc := range got.Incidents {
		if want := fmt.Sprintf("incident-%d", i); inc.ID != want {
			t.Fatalf("order not preserved at %d: got %s, want %s", i, inc.ID, want)
		}
	}
}

// Scenario: one low-severity F1 incident at Monza.
func TestFilterIncidents_SeverityScenario(t *testing.T) {
	t.Parallel()

	incidents := []domain.Incident{{
		ID:           "a",
		Severity:     domain.SeverityLow,
		Status:       domain.StatusPending,
		RaceCategory: domain.CategoryF1,
		Circuit:      "Monza",
		Drivers:      []string{"X"},
	}}

	got := service.FilterIncidents(incidents, domain.IncidentQuery{Severity: "low", Page: 1, Limit: 10})
	want := domain.IncidentList{
		Incidents: incidents,
		Pagination: domain.PaginationInfo{
			Page: 1, Limit: 10, Total: 1, Filtered: 1, TotalPages: 1,
			HasNext: false, HasPrev: false,
		},
		Counts: domain.IncidentCounts{Total: 1, Filtered: 1, Showing: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("severity=low result mismatch (-want +got):\n%s", diff)
	}

	got = service.FilterIncidents(incidents, domain.IncidentQuery{Severity: "high"})
	if len(got.Incidents) != 0 {
		t.Fatalf("severity=high should match nothing, got %+v", got.Incidents)
	}
	if got.Pagination.Filtered != 0 || got.Pagination.TotalPages != 0 ||
		got.Pagination.HasNext || got.Pagination.HasPrev {
		t.Fatalf("unexpected pagination for empty filter: %+v", got.Pagination)
	}
	if got.Counts.Total != 1 || got.Counts.Filtered != 0 || got.Counts.Showing != 0 {
		t.Fatalf("unexpected counts for empty filter: %+v", got.Counts)
	}
}

func TestFilterIncidents_ConjunctiveFilters(t *testing.T) {
	t.Parallel()

	incidents := []domain.Incident{
		{ID: "a", Severity: domain.SeverityLow, Status: domain.StatusPending, RaceCategory: domain.CategoryF1, Location: "Monza", Circuit: "Monza"},
		{ID: "b", Severity: domain.SeverityLow, Status: domain.StatusResolved, RaceCategory: domain.CategoryF1, Location: "Monza", Circuit: "Monza"},
		{ID: "c", Severity: domain.SeverityHigh, Status: domain.StatusPending, RaceCategory: domain.CategoryRally, Location: "Wales", Circuit: "Wales"},
	}

	got := service.FilterIncidents(incidents, domain.IncidentQuery{
		Severity: "low",
		Status:   "pending",
		Category: "F1",
		Location: "Monza",
		Circuit:  "Monza",
	})
	if len(got.Incidents) != 1 || got.Incidents[0].ID != "a" {
		t.Fatalf("conjunctive filters should leave only a, got %+v", got.Incidents)
	}

	// Blank filters are ignored rather than matched against empty fields.
	got = service.FilterIncidents(incidents, domain.IncidentQuery{Severity: "  "})
	if len(got.Incidents) != 3 {
		t.Fatalf("blank filter should be a no-op, got %d incidents", len(got.Incidents))
	}
}
