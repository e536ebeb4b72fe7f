package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"racecontrol/internal/domain"
	"racecontrol/internal/service"
	mock_service "racecontrol/internal/service/mocks"
	"racecontrol/pkg/e"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validForm() domain.IncidentForm {
	return domain.IncidentForm{
		Type:         "collision",
		RaceCategory: "F1",
		Location:     "Monte Carlo",
		Severity:     "high",
		Drivers:      domain.StringList{"Max Verstappen", "Lando Norris"},
		Teams:        domain.StringList{"Red Bull", "McLaren"},
		LapNumber:    12,
		Description:  "contact at the hairpin",
		Status:       "pending",
	}
}

func TestIncidentService_Create_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockIncidentStore(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	existing := []domain.Incident{{ID: "old", Timestamp: "2025-01-01T00:00:00Z"}}
	store.EXPECT().Load(gomock.Any()).Return(existing, nil).Times(1)

	var saved []domain.Incident
	store.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incidents []domain.Incident) error {
			saved = incidents
			return nil
		}).
		Times(1)

	var notified *domain.Incident
	notifier.EXPECT().
		IncidentCreated(gomock.Any()).
		Do(func(inc domain.Incident) { notified = &inc }).
		Times(1)

	svc := service.NewIncidentService(store, notifier, nil, testLogger())

	created, err := svc.Create(context.Background(), validForm())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if _, err := time.Parse(time.RFC3339, created.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %q", created.Timestamp)
	}
	if created.Circuit != "Monte Carlo" {
		t.Fatalf("circuit should default to location, got %q", created.Circuit)
	}
	if created.RaceTime != "00:00:00" {
		t.Fatalf("raceTime should default, got %q", created.RaceTime)
	}

	// New record is prepended, keeping newest-first order.
	if len(saved) != 2 || saved[0].ID != created.ID || saved[1].ID != "old" {
		t.Fatalf("unexpected saved collection: %+v", saved)
	}

	if notified == nil || notified.ID != created.ID {
		t.Fatalf("notifier did not receive the created record")
	}
}

func TestIncidentService_Create_InvalidEnums(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		mutate func(*domain.IncidentForm)
	}{
		{"type", func(f *domain.IncidentForm) { f.Type = "explosion" }},
		{"raceCategory", func(f *domain.IncidentForm) { f.RaceCategory = "F2" }},
		{"severity", func(f *domain.IncidentForm) { f.Severity = "catastrophic" }},
		{"status", func(f *domain.IncidentForm) { f.Status = "archived" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Validation failure happens before any store or notifier call.
			store := mock_service.NewMockIncidentStore(ctrl)
			notifier := mock_service.NewMockNotifier(ctrl)

			svc := service.NewIncidentService(store, notifier, nil, testLogger())

			form := validForm()
			tc.mutate(&form)

			if _, err := svc.Create(context.Background(), form); !errors.Is(err, e.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestIncidentService_Create_SaveFailureSkipsNotify(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockIncidentStore(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	store.EXPECT().Load(gomock.Any()).Return([]domain.Incident{}, nil).Times(1)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(e.ErrStore).Times(1)

	svc := service.NewIncidentService(store, notifier, nil, testLogger())

	if _, err := svc.Create(context.Background(), validForm()); !errors.Is(err, e.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

func TestIncidentService_Get(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockIncidentStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return([]domain.Incident{{ID: "a"}}, nil).AnyTimes()

	svc := service.NewIncidentService(store, nil, nil, testLogger())

	got, err := svc.Get(context.Background(), "a")
	if err != nil || got == nil || got.ID != "a" {
		t.Fatalf("expected incident a, got %+v err %v", got, err)
	}

	// Absence is a nil return, not an error.
	got, err = svc.Get(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("expected nil,nil for missing id, got %+v err %v", got, err)
	}

	if _, err := svc.Get(context.Background(), ""); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty id, got %v", err)
	}
}

func TestIncidentService_Update_PreservesIDAndTimestamp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockIncidentStore(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	original := domain.Incident{
		ID:        "a",
		Type:      domain.TypePenalty,
		Timestamp: "2025-03-01T10:00:00Z",
	}
	store.EXPECT().Load(gomock.Any()).Return([]domain.Incident{original}, nil).Times(1)

	var saved []domain.Incident
	store.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incidents []domain.Incident) error {
			saved = incidents
			return nil
		}).
		Times(1)
	notifier.EXPECT().IncidentUpdated(gomock.Any()).Times(1)

	svc := service.NewIncidentService(store, notifier, nil, testLogger())

	updated, err := svc.Update(context.Background(), "a", validForm())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.ID != "a" || updated.Timestamp != "2025-03-01T10:00:00Z" {
		t.Fatalf("id/timestamp must survive update: %+v", updated)
	}
	if updated.Type != domain.TypeCollision {
		t.Fatalf("type not replaced: %+v", updated)
	}
	if len(saved) != 1 || saved[0].ID != "a" {
		t.Fatalf("unexpected saved collection: %+v", saved)
	}
}

func TestIncidentService_Update_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockIncidentStore(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)
	store.EXPECT().Load(gomock.Any()).Return([]domain.Incident{{ID: "b"}}, nil).Times(1)

	svc := service.NewIncidentService(store, notifier, nil, testLogger())

	got, err := svc.Update(context.Background(), "a", validForm())
	if err != nil || got != nil {
		t.Fatalf("expected nil,nil for missing id, got %+v err %v", got, err)
	}
}

func TestIncidentService_Delete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockIncidentStore(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	store.EXPECT().Load(gomock.Any()).Return([]domain.Incident{{ID: "a"}, {ID: "b"}}, nil).Times(1)
	var saved []domain.Incident
	store.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incidents []domain.Incident) error {
			saved = incidents
			return nil
		}).
		Times(1)
	notifier.EXPECT().IncidentDeleted("a").Times(1)

	svc := service.NewIncidentService(store, notifier, nil, testLogger())

	deleted, err := svc.Delete(context.Background(), "a")
	if err != nil || !deleted {
		t.Fatalf("expected deletion, got %v err %v", deleted, err)
	}
	if len(saved) != 1 || saved[0].ID != "b" {
		t.Fatalf("unexpected saved collection: %+v", saved)
	}
}

func TestIncidentService_Delete_AbsentIDIsIdempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockIncidentStore(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)

	// Two attempts, no Save and no notify on either.
	store.EXPECT().Load(gomock.Any()).Return([]domain.Incident{{ID: "b"}}, nil).Times(2)

	svc := service.NewIncidentService(store, notifier, nil, testLogger())

	for i := 0; i < 2; i++ {
		deleted, err := svc.Delete(context.Background(), "missing")
		if err != nil || deleted {
			t.Fatalf("attempt %d: expected false,nil got %v err %v", i, deleted, err)
		}
	}
}

func TestIncidentService_Create_EnqueuesWebhook(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockIncidentStore(ctrl)
	notifier := mock_service.NewMockNotifier(ctrl)
	queue := mock_service.NewMockWebhookQueue(ctrl)

	store.EXPECT().Load(gomock.Any()).Return([]domain.Incident{}, nil).Times(1)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	notifier.EXPECT().IncidentCreated(gomock.Any()).Times(1)

	var payload domain.WebhookPayload
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.WebhookPayload) error {
			payload = p
			return nil
		}).
		Times(1)

	svc := service.NewIncidentService(store, notifier, queue, testLogger())

	created, err := svc.Create(context.Background(), validForm())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if payload.Event != domain.WebhookIncidentCreated || payload.IncidentID != created.ID {
		t.Fatalf("unexpected webhook payload: %+v", payload)
	}
}
