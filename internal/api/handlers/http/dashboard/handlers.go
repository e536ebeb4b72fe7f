package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"racecontrol/internal/domain"
)

type Dashboard interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	RecentIncidents(ctx context.Context) ([]domain.Incident, error)
	SeverityData(ctx context.Context) ([]domain.SeveritySlice, error)
	TrendData() []domain.TrendPoint
	HourlyData() []domain.HourlyPoint
	CircuitData() []domain.CircuitStats
	All(ctx context.Context) (domain.DashboardData, error)
}

type Handler struct {
	logger    *slog.Logger
	Dashboard Dashboard
}

func NewHandler(logger *slog.Logger, dashboard Dashboard) *Handler {
	return &Handler{logger: logger, Dashboard: dashboard}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.Stats(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) RecentIncidents(w http.ResponseWriter, r *http.Request) {
	recent, err := h.Dashboard.RecentIncidents(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recent)
}

func (h *Handler) SeverityData(w http.ResponseWriter, r *http.Request) {
	data, err := h.Dashboard.SeverityData(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, data)
}

func (h *Handler) TrendData(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Dashboard.TrendData())
}

func (h *Handler) HourlyData(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Dashboard.HourlyData())
}

func (h *Handler) CircuitData(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Dashboard.CircuitData())
}

func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	data, err := h.Dashboard.All(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, data)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log(r).Error("dashboard handler error",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	h.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
