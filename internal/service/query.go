package service

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"racecontrol/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// FilterIncidents is a pure function of the full collection and the query
// parameters. Collection order is preserved; recency ordering is the
// mutation service's prepend-on-create invariant, not a sort done here.
func FilterIncidents(incidents []domain.Incident, q domain.IncidentQuery) domain.IncidentList {
	filtered := incidents

	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		filtered = lo.Filter(filtered, func(inc domain.Incident, _ int) bool {
			return strings.Contains(searchableText(inc), term)
		})
	}

	filtered = filterExact(filtered, q.Category, func(inc domain.Incident) string { return string(inc.RaceCategory) })
	filtered = filterExact(filtered, q.Severity, func(inc domain.Incident) string { return string(inc.Severity) })
	filtered = filterExact(filtered, q.Status, func(inc domain.Incident) string { return string(inc.Status) })
	filtered = filterExact(filtered, q.Type, func(inc domain.Incident) string { return string(inc.Type) })
	filtered = filterExact(filtered, q.Location, func(inc domain.Incident) string { return inc.Location })
	filtered = filterExact(filtered, q.Circuit, func(inc domain.Incident) string { return inc.Circuit })

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	pageSlice := paginate(filtered, page, limit)
	totalPages := int(math.Ceil(float64(len(filtered)) / float64(limit)))

	return domain.IncidentList{
		Incidents: pageSlice,
		Pagination: domain.PaginationInfo{
			Page:       page,
			Limit:      limit,
			Total:      len(incidents),
			Filtered:   len(filtered),
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
		Counts: domain.IncidentCounts{
			Total:    len(incidents),
			Filtered: len(filtered),
			Showing:  len(pageSlice),
		},
	}
}

func filterExact(incidents []domain.Incident, want string, field func(domain.Incident) string) []domain.Incident {
	if strings.TrimSpace(want) == "" {
		return incidents
	}
	return lo.Filter(incidents, func(inc domain.Incident, _ int) bool {
		return field(inc) == want
	})
}

// searchableText is the lowercase haystack for free-text search: circuit,
// location, category, drivers and the type with underscores as spaces.
func searchableText(inc domain.Incident) string {
	parts := make([]string, 0, len(inc.Drivers)+4)
	parts = append(parts, inc.Circuit, inc.Location, string(inc.RaceCategory))
	parts = append(parts, inc.Drivers...)
	parts = append(parts, strings.ReplaceAll(string(inc.Type), "_", " "))
	return strings.ToLower(strings.Join(parts, " "))
}

func paginate(incidents []domain.Incident, page, limit int) []domain.Incident {
	start := (page - 1) * limit
	if start >= len(incidents) {
		return []domain.Incident{}
	}
	end := start + limit
	if end > len(incidents) {
		end = len(incidents)
	}
	return incidents[start:end]
}
