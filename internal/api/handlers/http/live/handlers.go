package live

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"racecontrol/internal/domain"
)

type Live interface {
	Alerts() []domain.LiveAlert
	RemoveAlert(alertID string)
	RaceDetails() domain.RaceDetails
	LiveData() domain.LiveData
	ChartData() domain.LiveChartData
	TrackMap(selectedID string) domain.TrackMapResponse
}

type Handler struct {
	logger *slog.Logger
	Live   Live
}

func NewHandler(logger *slog.Logger, live Live) *Handler {
	return &Handler{logger: logger, Live: live}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Live.Alerts())
}

func (h *Handler) RemoveAlert(w http.ResponseWriter, r *http.Request) {
	alertID := chi.URLParam(r, "alertId")
	if alertID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Alert ID is required"})
		return
	}

	h.Live.RemoveAlert(alertID)
	h.log(r).Info("alert removed", slog.String("alert_id", alertID))
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Alert removed successfully"})
}

func (h *Handler) RaceDetails(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Live.RaceDetails())
}

func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Live.LiveData())
}

func (h *Handler) ChartData(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Live.ChartData())
}

func (h *Handler) TrackMap(w http.ResponseWriter, r *http.Request) {
	selectedID := r.URL.Query().Get("selectedId")
	h.writeJSON(w, http.StatusOK, h.Live.TrackMap(selectedID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
