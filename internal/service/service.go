package service

import (
	"context"

	"racecontrol/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// IncidentStore is the record store seam: whole-collection load/save over
// one backing document.
type IncidentStore interface {
	Load(ctx context.Context) ([]domain.Incident, error)
	Save(ctx context.Context, incidents []domain.Incident) error
}

// Notifier receives one event per successful mutation. Implementations must
// tolerate being called with no subscribers connected.
type Notifier interface {
	IncidentCreated(incident domain.Incident)
	IncidentUpdated(incident domain.Incident)
	IncidentDeleted(id string)
}

type WebhookQueue interface {
	Enqueue(ctx context.Context, payload domain.WebhookPayload) error
}

type IncidentService interface {
	List(ctx context.Context) ([]domain.Incident, error)
	Query(ctx context.Context, q domain.IncidentQuery) (domain.IncidentList, error)
	Create(ctx context.Context, form domain.IncidentForm) (*domain.Incident, error)
	Get(ctx context.Context, id string) (*domain.Incident, error)
	Update(ctx context.Context, id string, form domain.IncidentForm) (*domain.Incident, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type DashboardService interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	RecentIncidents(ctx context.Context) ([]domain.Incident, error)
	SeverityData(ctx context.Context) ([]domain.SeveritySlice, error)
	TrendData() []domain.TrendPoint
	HourlyData() []domain.HourlyPoint
	CircuitData() []domain.CircuitStats
	All(ctx context.Context) (domain.DashboardData, error)
}

type LiveService interface {
	Alerts() []domain.LiveAlert
	RemoveAlert(alertID string)
	RaceDetails() domain.RaceDetails
	LiveData() domain.LiveData
	ChartData() domain.LiveChartData
	TrackMap(selectedID string) domain.TrackMapResponse
}

type AuthService interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
}

type Service struct {
	Incidents IncidentService
	Dashboard DashboardService
	Live      LiveService
	Auth      AuthService
}

func NewService(
	incidents IncidentService,
	dashboard DashboardService,
	live LiveService,
	auth AuthService,
) *Service {
	return &Service{
		Incidents: incidents,
		Dashboard: dashboard,
		Live:      live,
		Auth:      auth,
	}
}
