package domain

import "time"

type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

type LiveAlert struct {
	ID        string    `json:"id"`
	Type      AlertType `json:"type"`
	Message   string    `json:"message"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

type RaceDetails struct {
	RaceTime   string `json:"raceTime"`
	CurrentLap int    `json:"currentLap"`
}

type ResolutionRate struct {
	Value  int `json:"value"`
	Change int `json:"change"`
}

type RealTimeMetrics struct {
	IncidentRate   int            `json:"incidentRate"`
	ResponseTime   int            `json:"responseTime"`
	ResolutionRate ResolutionRate `json:"resolutionRate"`
}

type TimelinePoint struct {
	Time         string `json:"time"`
	Incidents    int    `json:"incidents"`
	ResponseTime int    `json:"responseTime"`
	Severity     int    `json:"severity"`
	Resolved     int    `json:"resolved"`
}

type LiveData struct {
	Metrics      RealTimeMetrics `json:"metrics"`
	TimelineData []TimelinePoint `json:"timelineData"`
}

type LiveChartData struct {
	CurrentMetrics RealTimeMetrics `json:"currentMetrics"`
	TimelineData   []TimelinePoint `json:"timelineData"`
}

type TrackLocation struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type TrackIncident struct {
	ID        string    `json:"id"`
	Location  string    `json:"location"`
	Severity  Severity  `json:"severity"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
}

type TrackInfo struct {
	Name      string          `json:"name"`
	Locations []TrackLocation `json:"locations"`
}

type TrackMapResponse struct {
	Incidents        []TrackIncident `json:"incidents"`
	SelectedIncident *TrackIncident  `json:"selectedIncident"`
	TrackInfo        TrackInfo       `json:"trackInfo"`
}
