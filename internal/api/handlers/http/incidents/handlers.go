package incidents

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"racecontrol/internal/domain"
	"racecontrol/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Incidents interface {
	List(ctx context.Context) ([]domain.Incident, error)
	Query(ctx context.Context, q domain.IncidentQuery) (domain.IncidentList, error)
	Create(ctx context.Context, form domain.IncidentForm) (*domain.Incident, error)
	Get(ctx context.Context, id string) (*domain.Incident, error)
	Update(ctx context.Context, id string, form domain.IncidentForm) (*domain.Incident, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Handler struct {
	logger    *slog.Logger
	Incidents Incidents
}

func NewHandler(logger *slog.Logger, incidents Incidents) *Handler {
	return &Handler{
		logger:    logger,
		Incidents: incidents,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// IncidentList has a two-shape contract: without query parameters the full
// bare collection, with any parameter the filtered and paginated envelope.
func (h *Handler) IncidentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	params := r.URL.Query()
	if len(params) == 0 {
		incidents, err := h.Incidents.List(r.Context())
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, incidents)
		return
	}

	q := domain.IncidentQuery{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		Severity: params.Get("severity"),
		Status:   params.Get("status"),
		Type:     params.Get("type"),
		Location: params.Get("location"),
		Circuit:  params.Get("circuit"),
		Page:     parseInt(params.Get("page"), 1),
		Limit:    parseInt(params.Get("limit"), 10),
	}

	result, err := h.Incidents.Query(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incidents listed",
		slog.Int("showing", result.Counts.Showing),
		slog.Int("filtered", result.Counts.Filtered),
		slog.Int("total", result.Counts.Total),
	)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) IncidentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentCreate", slog.String("remote", r.RemoteAddr))

	form, ok := h.bindForm(w, r)
	if !ok {
		return
	}

	incident, err := h.Incidents.Create(r.Context(), form)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident created", slog.String("id", incident.ID))
	h.writeJSON(w, http.StatusCreated, incident)
}

func (h *Handler) IncidentGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentGet", slog.String("remote", r.RemoteAddr))

	id := chi.URLParam(r, "id")
	incident, err := h.Incidents.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if incident == nil {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Incident not found"})
		return
	}

	h.writeJSON(w, http.StatusOK, incident)
}

func (h *Handler) IncidentUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentUpdate", slog.String("remote", r.RemoteAddr))

	id := chi.URLParam(r, "id")
	form, ok := h.bindForm(w, r)
	if !ok {
		return
	}

	incident, err := h.Incidents.Update(r.Context(), id, form)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if incident == nil {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Incident not found"})
		return
	}

	l.Info("incident updated", slog.String("id", id))
	h.writeJSON(w, http.StatusOK, incident)
}

func (h *Handler) IncidentDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentDelete", slog.String("remote", r.RemoteAddr))

	id := chi.URLParam(r, "id")
	deleted, err := h.Incidents.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !deleted {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Incident not found"})
		return
	}

	l.Info("incident deleted", slog.String("id", id))
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Incident deleted successfully"})
}

// bindForm decodes and structurally validates the create/update body before
// anything reaches the service.
func (h *Handler) bindForm(w http.ResponseWriter, r *http.Request) (domain.IncidentForm, bool) {
	l := h.log(r)

	var form domain.IncidentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return form, false
	}

	if err := validator.ValidateStruct(form); err != nil {
		l.Warn("form validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Missing required fields: type, raceCategory, location, description",
		})
		return form, false
	}

	return form, true
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
