package incidents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"racecontrol/internal/api/handlers/http/incidents"
	mock_incidents "racecontrol/internal/api/handlers/http/incidents/mocks"
	"racecontrol/internal/domain"
)

func newRouter(svc incidents.Incidents) *chi.Mux {
	h := incidents.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	r := chi.NewRouter()
	r.Get("/api/incidents", h.IncidentList)
	r.Post("/api/incidents", h.IncidentCreate)
	r.Get("/api/incidents/{id}", h.IncidentGet)
	r.Put("/api/incidents/{id}", h.IncidentUpdate)
	r.Delete("/api/incidents/{id}", h.IncidentDelete)
	return r
}

func TestIncidentList_NoParamsReturnsBareCollection(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)
	svc.EXPECT().
		List(gomock.Any()).
		Return([]domain.Incident{{ID: "a"}, {ID: "b"}}, nil).
		Times(1)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/incidents", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	// Bare array, no envelope.
	var incidentsOut []domain.Incident
	if err := json.Unmarshal(rec.Body.Bytes(), &incidentsOut); err != nil {
		t.Fatalf("expected a bare array: %v (body %s)", err, rec.Body.String())
	}
	if len(incidentsOut) != 2 {
		t.Fatalf("expected 2 incidents, got %d", len(incidentsOut))
	}
}

func TestIncidentList_WithParamsReturnsEnvelope(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)
	svc.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.IncidentQuery) (domain.IncidentList, error) {
			if q.Severity != "low" || q.Page != 2 || q.Limit != 5 {
				t.Fatalf("query params not forwarded: %+v", q)
			}
			return domain.IncidentList{
				Incidents:  []domain.Incident{{ID: "a"}},
				Pagination: domain.PaginationInfo{Page: 2, Limit: 5, Total: 11, Filtered: 6, TotalPages: 2, HasPrev: true},
				Counts:     domain.IncidentCounts{Total: 11, Filtered: 6, Showing: 1},
			}, nil
		}).
		Times(1)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/incidents?severity=low&page=2&limit=5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var out domain.IncidentList
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if out.Pagination.Page != 2 || out.Counts.Showing != 1 {
		t.Fatalf("unexpected envelope: %+v", out)
	}
}

func TestIncidentCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form domain.IncidentForm) (*domain.Incident, error) {
			return &domain.Incident{
				ID:           "new-id",
				Type:         domain.IncidentType(form.Type),
				RaceCategory: domain.RaceCategory(form.RaceCategory),
			}, nil
		}).
		Times(1)

	body := `{
		"type": "collision",
		"raceCategory": "F1",
		"location": "Monte Carlo",
		"severity": "high",
		"drivers": "Max Verstappen, Lando Norris",
		"lapNumber": "14",
		"description": "contact at the hairpin",
		"status": "pending"
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/incidents", bytes.NewBufferString(body))
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var out domain.Incident
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != "new-id" {
		t.Fatalf("unexpected incident: %+v", out)
	}
}

func TestIncidentCreate_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The service must never be reached.
	svc := mock_incidents.NewMockIncidents(ctrl)

	body := `{"type": "collision"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/incidents", bytes.NewBufferString(body))
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestIncidentCreate_InvalidJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/incidents", bytes.NewBufferString("{nope"))
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestIncidentGet_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)
	svc.EXPECT().Get(gomock.Any(), "missing").Return(nil, nil).Times(1)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/incidents/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestIncidentDelete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)
	svc.EXPECT().Delete(gomock.Any(), "a").Return(true, nil).Times(1)
	svc.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil).Times(1)

	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/incidents/a", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/incidents/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
