package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"racecontrol/internal/domain"
)

var trackLocations = []domain.TrackLocation{
	{Name: "Turn 1", X: 15, Y: 20},
	{Name: "Turn 3", X: 45, Y: 35},
	{Name: "Pit Lane", X: 80, Y: 70},
	{Name: "Sector 2", X: 60, Y: 50},
	{Name: "Chicane", X: 30, Y: 80},
}

var trackIncidentTypes = []string{"Collision", "Debris", "Mechanical", "Flag", "Safety"}

var severityLevels = []domain.Severity{
	domain.SeverityLow,
	domain.SeverityMedium,
	domain.SeverityHigh,
	domain.SeverityCritical,
}

type alertTemplate struct {
	typ      domain.AlertType
	message  string
	location string
}

var alertTemplates = []alertTemplate{
	{domain.AlertCritical, "Multi-car collision at Turn 3", "Monaco GP - Turn 3"},
	{domain.AlertWarning, "Yellow flag deployed in Sector 2", "Monaco GP - Sector 2"},
	{domain.AlertInfo, "Safety car deployed", "Monaco GP - Track"},
	{domain.AlertCritical, "Red flag - Session stopped", "Monaco GP - Control"},
	{domain.AlertWarning, "Debris reported on track", "Monaco GP - Turn 1"},
}

// liveService simulates race telemetry. All state lives on the struct and
// is guarded by mu; there is no package-level state and no reset besides
// process restart.
type liveService struct {
	mu sync.Mutex

	rnd            *rand.Rand
	alerts         []domain.LiveAlert
	raceDetails    domain.RaceDetails
	timeline       []domain.TimelinePoint
	chart          []domain.TimelinePoint
	trackIncidents []domain.TrackIncident
	selectedID     string
}

func NewLiveService(seed int64) LiveService {
	s := &liveService{
		rnd: rand.New(rand.NewSource(seed)),
		raceDetails: domain.RaceDetails{
			RaceTime:   "01:23:45",
			CurrentLap: 67,
		},
	}

	s.alerts = []domain.LiveAlert{s.newAlert()}

	now := time.Now()
	for i := 19; i >= 0; i-- {
		at := now.Add(-time.Duration(i) * 3 * time.Second)
		s.timeline = append(s.timeline, s.newTimelinePoint(at))
		s.chart = append(s.chart, s.newTimelinePoint(at))
	}
	return s
}

func (s *liveService) Alerts() []domain.LiveAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 30% chance of a fresh alert per poll; keep the five most recent.
	if s.rnd.Float64() > 0.6 {
		s.alerts = append([]domain.LiveAlert{s.newAlert()}, s.alerts...)
		if len(s.alerts) > 5 {
			s.alerts = s.alerts[:5]
		}
	}

	out := make([]domain.LiveAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func (s *liveService) RemoveAlert(alertID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.alerts[:0]
	for _, a := range s.alerts {
		if a.ID != alertID {
			remaining = append(remaining, a)
		}
	}
	s.alerts = remaining
}

func (s *liveService) RaceDetails() domain.RaceDetails {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raceDetails.RaceTime = tickRaceTime(s.raceDetails.RaceTime)
	return s.raceDetails
}

func (s *liveService) LiveData() domain.LiveData {
	s.mu.Lock()
	defer s.mu.Unlock()

	point := s.newTimelinePoint(time.Now())
	s.timeline = appendCapped(s.timeline, point, 20)

	out := make([]domain.TimelinePoint, len(s.timeline))
	copy(out, s.timeline)

	return domain.LiveData{
		Metrics:      metricsFromPoint(point),
		TimelineData: out,
	}
}

func (s *liveService) ChartData() domain.LiveChartData {
	s.mu.Lock()
	defer s.mu.Unlock()

	point := s.newTimelinePoint(time.Now())
	s.chart = appendCapped(s.chart, point, 20)

	out := make([]domain.TimelinePoint, len(s.chart))
	copy(out, s.chart)

	return domain.LiveChartData{
		CurrentMetrics: metricsFromPoint(point),
		TimelineData:   out,
	}
}

func (s *liveService) TrackMap(selectedID string) domain.TrackMapResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 40% chance of a new track incident per poll; keep the ten most recent.
	if s.rnd.Float64() > 0.6 {
		loc := trackLocations[s.rnd.Intn(len(trackLocations))]
		incident := domain.TrackIncident{
			ID:        uuid.NewString(),
			Location:  loc.Name,
			Severity:  severityLevels[s.rnd.Intn(len(severityLevels))],
			Type:      trackIncidentTypes[s.rnd.Intn(len(trackIncidentTypes))],
			Timestamp: time.Now(),
			X:         loc.X + (s.rnd.Float64()-0.5)*10,
			Y:         loc.Y + (s.rnd.Float64()-0.5)*10,
		}
		s.trackIncidents = append([]domain.TrackIncident{incident}, s.trackIncidents...)
		if len(s.trackIncidents) > 10 {
			s.trackIncidents = s.trackIncidents[:10]
		}
		if s.selectedID == "" {
			s.selectedID = incident.ID
		}
	}

	if selectedID != "" {
		s.selectedID = selectedID
	}

	incidents := make([]domain.TrackIncident, len(s.trackIncidents))
	copy(incidents, s.trackIncidents)

	var selected *domain.TrackIncident
	for i := range incidents {
		if incidents[i].ID == s.selectedID {
			selected = &incidents[i]
			break
		}
	}

	return domain.TrackMapResponse{
		Incidents:        incidents,
		SelectedIncident: selected,
		TrackInfo: domain.TrackInfo{
			Name:      "Monaco GP",
			Locations: trackLocations,
		},
	}
}

func (s *liveService) newAlert() domain.LiveAlert {
	tpl := alertTemplates[s.rnd.Intn(len(alertTemplates))]
	return domain.LiveAlert{
		ID:        uuid.NewString(),
		Type:      tpl.typ,
		Message:   tpl.message,
		Location:  tpl.location,
		Timestamp: time.Now(),
	}
}

func (s *liveService) newTimelinePoint(at time.Time) domain.TimelinePoint {
	return domain.TimelinePoint{
		Time:         at.Format("15:04:05"),
		Incidents:    s.rnd.Intn(8) + 1,
		ResponseTime: s.rnd.Intn(10) + 2,
		Severity:     s.rnd.Intn(4) + 1,
		Resolved:     s.rnd.Intn(6) + 1,
	}
}

func metricsFromPoint(p domain.TimelinePoint) domain.RealTimeMetrics {
	return domain.RealTimeMetrics{
		IncidentRate: p.Incidents,
		ResponseTime: p.ResponseTime,
		ResolutionRate: domain.ResolutionRate{
			Value:  87,
			Change: 5,
		},
	}
}

func appendCapped(points []domain.TimelinePoint, p domain.TimelinePoint, max int) []domain.TimelinePoint {
	points = append(points, p)
	if len(points) > max {
		points = points[len(points)-max:]
	}
	return points
}

func tickRaceTime(raceTime string) string {
	var h, m, sec int
	if _, err := fmt.Sscanf(raceTime, "%d:%d:%d", &h, &m, &sec); err != nil {
		return raceTime
	}
	total := h*3600 + m*60 + sec + 1
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
