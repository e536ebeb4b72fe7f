package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"racecontrol/internal/domain"
)

type Auth interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
}

type Handler struct {
	logger *slog.Logger
	Auth   Auth
}

func NewHandler(logger *slog.Logger, auth Auth) *Handler {
	return &Handler{logger: logger, Auth: auth}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email and password are required"})
		return
	}
	if req.Email == "" || req.Password == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email and password are required"})
		return
	}

	resp, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		l.Error("login failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
		return
	}
	if resp == nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
