package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"racecontrol/internal/domain"
)

var severityColors = map[domain.Severity]string{
	domain.SeverityCritical: "#ef4444",
	domain.SeverityHigh:     "#f97316",
	domain.SeverityMedium:   "#eab308",
	domain.SeverityLow:      "#22c55e",
}

const severityFallbackColor = "#64748b"

type dashboardService struct {
	store IncidentStore

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

// NewDashboardService owns its random source so that simulated series do not
// depend on hidden global state.
func NewDashboardService(store IncidentStore, seed int64) DashboardService {
	return &dashboardService{
		store: store,
		rnd:   rand.New(rand.NewSource(seed)),
	}
}

func (s *dashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	incidents, err := s.store.Load(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	byStatus := lo.CountValuesBy(incidents, func(inc domain.Incident) domain.IncidentStatus {
		return inc.Status
	})

	return domain.DashboardStats{
		TotalIncidents: len(incidents),
		Investigating:  byStatus[domain.StatusInvestigating],
		Resolved:       byStatus[domain.StatusResolved],
		Pending:        byStatus[domain.StatusPending],
	}, nil
}

func (s *dashboardService) RecentIncidents(ctx context.Context) ([]domain.Incident, error) {
	incidents, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]domain.Incident, len(incidents))
	copy(sorted, incidents)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}
	return sorted, nil
}

func (s *dashboardService) SeverityData(ctx context.Context) ([]domain.SeveritySlice, error) {
	incidents, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	counts := lo.CountValuesBy(incidents, func(inc domain.Incident) domain.Severity {
		return inc.Severity
	})

	slices := make([]domain.SeveritySlice, 0, len(counts))
	for _, severity := range []domain.Severity{
		domain.SeverityCritical, domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow,
	} {
		count, ok := counts[severity]
		if !ok {
			continue
		}
		fill, ok := severityColors[severity]
		if !ok {
			fill = severityFallbackColor
		}
		slices = append(slices, domain.SeveritySlice{
			Name:  string(severity),
			Value: count,
			Fill:  fill,
		})
	}
	return slices, nil
}

func (s *dashboardService) TrendData() []domain.TrendPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	points := make([]domain.TrendPoint, 0, 30)
	today := time.Now()

	for i := 29; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		points = append(points, domain.TrendPoint{
			Date:         date.Format("Jan 2"),
			FullDate:     date.Format("2006-01-02"),
			Incidents:    s.rnd.Intn(12) + 3,
			Resolved:     s.rnd.Intn(8) + 2,
			Critical:     s.rnd.Intn(3) + 1,
			Pending:      s.rnd.Intn(4) + 1,
			ResponseTime: s.rnd.Intn(10) + 2,
		})
	}
	return points
}

func (s *dashboardService) HourlyData() []domain.HourlyPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	points := make([]domain.HourlyPoint, 0, 24)
	for hour := 0; hour < 24; hour++ {
		points = append(points, domain.HourlyPoint{
			Hour:      fmt.Sprintf("%02d:00", hour),
			Incidents: s.rnd.Intn(10) + 1,
			Severity:  s.rnd.Intn(4) + 1,
		})
	}
	return points
}

func (s *dashboardService) CircuitData() []domain.CircuitStats {
	return []domain.CircuitStats{
		{Circuit: "Monaco", Incidents: 8, Resolved: 6, AvgResponseTime: 4.5, RiskScore: 85},
		{Circuit: "Silverstone", Incidents: 6, Resolved: 5, AvgResponseTime: 3.2, RiskScore: 65},
		{Circuit: "Spa", Incidents: 7, Resolved: 4, AvgResponseTime: 5.1, RiskScore: 78},
		{Circuit: "Monza", Incidents: 5, Resolved: 5, AvgResponseTime: 2.8, RiskScore: 45},
		{Circuit: "Suzuka", Incidents: 4, Resolved: 3, AvgResponseTime: 3.7, RiskScore: 55},
		{Circuit: "COTA", Incidents: 6, Resolved: 4, AvgResponseTime: 3.9, RiskScore: 62},
	}
}

func (s *dashboardService) All(ctx context.Context) (domain.DashboardData, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return domain.DashboardData{}, err
	}
	recent, err := s.RecentIncidents(ctx)
	if err != nil {
		return domain.DashboardData{}, err
	}
	severity, err := s.SeverityData(ctx)
	if err != nil {
		return domain.DashboardData{}, err
	}

	return domain.DashboardData{
		Stats:           stats,
		RecentIncidents: recent,
		SeverityData:    severity,
		TrendData:       s.TrendData(),
		HourlyData:      s.HourlyData(),
		CircuitData:     s.CircuitData(),
	}, nil
}
