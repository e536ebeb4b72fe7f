package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"racecontrol/internal/domain"
	"racecontrol/pkg/e"
)

const defaultRaceTime = "00:00:00"

type incidentService struct {
	store    IncidentStore
	notifier Notifier
	webhooks WebhookQueue
	logger   *slog.Logger
}

func NewIncidentService(store IncidentStore, notifier Notifier, webhooks WebhookQueue, logger *slog.Logger) IncidentService {
	return &incidentService{
		store:    store,
		notifier: notifier,
		webhooks: webhooks,
		logger:   logger,
	}
}

func (s *incidentService) List(ctx context.Context) ([]domain.Incident, error) {
	return s.store.Load(ctx)
}

func (s *incidentService) Query(ctx context.Context, q domain.IncidentQuery) (domain.IncidentList, error) {
	incidents, err := s.store.Load(ctx)
	if err != nil {
		return domain.IncidentList{}, err
	}
	return FilterIncidents(incidents, q), nil
}

func (s *incidentService) Create(ctx context.Context, form domain.IncidentForm) (*domain.Incident, error) {
	incident, err := incidentFromForm(form)
	if err != nil {
		return nil, err
	}

	incidents, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	incident.ID = uuid.NewString()
	incident.Timestamp = time.Now().UTC().Format(time.RFC3339)

	// Prepend keeps the collection newest-first.
	incidents = append([]domain.Incident{*incident}, incidents...)
	if err := s.store.Save(ctx, incidents); err != nil {
		return nil, err
	}

	s.logger.Info("incident created",
		slog.String("id", incident.ID),
		slog.String("type", string(incident.Type)),
		slog.String("severity", string(incident.Severity)),
	)
	s.notifyCreated(ctx, *incident)

	return incident, nil
}

func (s *incidentService) Get(ctx context.Context, id string) (*domain.Incident, error) {
	if id == "" {
		return nil, e.Wrap("incident id is required", e.ErrInvalidInput)
	}
	incidents, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range incidents {
		if incidents[i].ID == id {
			return &incidents[i], nil
		}
	}
	return nil, nil
}

func (s *incidentService) Update(ctx context.Context, id string, form domain.IncidentForm) (*domain.Incident, error) {
	if id == "" {
		return nil, e.Wrap("incident id is required", e.ErrInvalidInput)
	}

	updated, err := incidentFromForm(form)
	if err != nil {
		return nil, err
	}

	incidents, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range incidents {
		if incidents[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	// id and creation timestamp survive every update.
	updated.ID = incidents[idx].ID
	updated.Timestamp = incidents[idx].Timestamp
	incidents[idx] = *updated

	if err := s.store.Save(ctx, incidents); err != nil {
		return nil, err
	}

	s.logger.Info("incident updated", slog.String("id", id))
	s.notifyUpdated(ctx, *updated)

	return updated, nil
}

func (s *incidentService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, e.Wrap("incident id is required", e.ErrInvalidInput)
	}

	incidents, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}

	remaining := make([]domain.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if inc.ID != id {
			remaining = append(remaining, inc)
		}
	}
	if len(remaining) == len(incidents) {
		return false, nil
	}

	if err := s.store.Save(ctx, remaining); err != nil {
		return false, err
	}

	s.logger.Info("incident deleted", slog.String("id", id))
	s.notifyDeleted(ctx, id)

	return true, nil
}

// incidentFromForm validates the four enum fields and normalizes the rest.
// It never assigns id or timestamp.
func incidentFromForm(form domain.IncidentForm) (*domain.Incident, error) {
	incType := domain.IncidentType(form.Type)
	if !incType.Valid() {
		return nil, e.Wrap(fmt.Sprintf("invalid incident type: %q", form.Type), e.ErrInvalidInput)
	}
	category := domain.RaceCategory(form.RaceCategory)
	if !category.Valid() {
		return nil, e.Wrap(fmt.Sprintf("invalid race category: %q", form.RaceCategory), e.ErrInvalidInput)
	}
	severity := domain.Severity(form.Severity)
	if !severity.Valid() {
		return nil, e.Wrap(fmt.Sprintf("invalid severity level: %q", form.Severity), e.ErrInvalidInput)
	}
	status := domain.IncidentStatus(form.Status)
	if !status.Valid() {
		return nil, e.Wrap(fmt.Sprintf("invalid status: %q", form.Status), e.ErrInvalidInput)
	}

	drivers := form.Drivers
	if drivers == nil {
		drivers = domain.StringList{}
	}
	teams := form.Teams
	if teams == nil {
		teams = domain.StringList{}
	}
	circuit := form.Circuit
	if circuit == "" {
		circuit = form.Location
	}
	raceTime := form.RaceTime
	if raceTime == "" {
		raceTime = defaultRaceTime
	}
	lap := int(form.LapNumber)
	if lap < 0 {
		lap = 0
	}

	return &domain.Incident{
		Type:         incType,
		RaceCategory: category,
		Location:     form.Location,
		Circuit:      circuit,
		Severity:     severity,
		Drivers:      drivers,
		Teams:        teams,
		LapNumber:    lap,
		RaceTime:     raceTime,
		Description:  form.Description,
		Status:       status,
		StewardNotes: form.StewardNotes,
	}, nil
}

func (s *incidentService) notifyCreated(ctx context.Context, inc domain.Incident) {
	if s.notifier != nil {
		s.notifier.IncidentCreated(inc)
	}
	s.enqueueWebhook(ctx, domain.WebhookPayload{
		Event:      domain.WebhookIncidentCreated,
		IncidentID: inc.ID,
		Incident:   &inc,
		OccurredAt: time.Now().UTC(),
	})
}

func (s *incidentService) notifyUpdated(ctx context.Context, inc domain.Incident) {
	if s.notifier != nil {
		s.notifier.IncidentUpdated(inc)
	}
	s.enqueueWebhook(ctx, domain.WebhookPayload{
		Event:      domain.WebhookIncidentUpdated,
		IncidentID: inc.ID,
		Incident:   &inc,
		OccurredAt: time.Now().UTC(),
	})
}

func (s *incidentService) notifyDeleted(ctx context.Context, id string) {
	if s.notifier != nil {
		s.notifier.IncidentDeleted(id)
	}
	s.enqueueWebhook(ctx, domain.WebhookPayload{
		Event:      domain.WebhookIncidentDeleted,
		IncidentID: id,
		OccurredAt: time.Now().UTC(),
	})
}

// Webhook enqueue failures are logged, never surfaced: the mutation already
// persisted.
func (s *incidentService) enqueueWebhook(ctx context.Context, payload domain.WebhookPayload) {
	if s.webhooks == nil {
		return
	}
	if err := s.webhooks.Enqueue(ctx, payload); err != nil {
		s.logger.Error("enqueue webhook failed",
			slog.String("event", string(payload.Event)),
			slog.Any("error", err),
		)
	}
}
