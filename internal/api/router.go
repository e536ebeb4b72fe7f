package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	authh "racecontrol/internal/api/handlers/http/auth"
	"racecontrol/internal/api/handlers/http/dashboard"
	"racecontrol/internal/api/handlers/http/incidents"
	liveh "racecontrol/internal/api/handlers/http/live"
	"racecontrol/internal/api/handlers/http/system"
	"racecontrol/internal/config"
	"racecontrol/internal/middleware"
	"racecontrol/internal/service"
	"racecontrol/internal/ws"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, hub *ws.Hub) *Server {
	incidentHandler := incidents.NewHandler(logger, svc.Incidents)
	dashboardHandler := dashboard.NewHandler(logger, svc.Dashboard)
	liveHandler := liveh.NewHandler(logger, svc.Live)
	authHandler := authh.NewHandler(logger, svc.Auth)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(incidentHandler, dashboardHandler, liveHandler, authHandler, systemHandler, hub, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	incidentHandler *incidents.Handler,
	dashboardHandler *dashboard.Handler,
	liveHandler *liveh.Handler,
	authHandler *authh.Handler,
	systemHandler *system.Handler,
	hub *ws.Hub,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Get("/ws", ws.ServeWS(hub, logger))

	mutLimit := middleware.Limit(30, 60, 5*time.Minute, logger)

	r.Route("/api", func(api chi.Router) {
		api.Get("/status", systemHandler.SystemStatus)
		api.Get("/health", systemHandler.SystemHealth)

		api.Route("/auth", func(ar chi.Router) {
			ar.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			ar.Post("/login", authHandler.Login)
		})

		api.Route("/incidents", func(ir chi.Router) {
			ir.Get("/", incidentHandler.IncidentList)
			ir.With(mutLimit).Post("/", incidentHandler.IncidentCreate)

			ir.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", incidentHandler.IncidentGet)
				rr.With(mutLimit).Put("/", incidentHandler.IncidentUpdate)
				rr.With(mutLimit).Delete("/", incidentHandler.IncidentDelete)
			})
		})

		api.Route("/dashboard", func(dr chi.Router) {
			dr.Get("/", dashboardHandler.All)
			dr.Get("/stats", dashboardHandler.Stats)
			dr.Get("/recent-incidents", dashboardHandler.RecentIncidents)
			dr.Get("/severity-data", dashboardHandler.SeverityData)
			dr.Get("/trend-data", dashboardHandler.TrendData)
			dr.Get("/hourly-data", dashboardHandler.HourlyData)
			dr.Get("/circuit-data", dashboardHandler.CircuitData)
		})

		api.Route("/live", func(lr chi.Router) {
			lr.Get("/alerts", liveHandler.Alerts)
			lr.Delete("/alerts/{alertId}", liveHandler.RemoveAlert)
			lr.Get("/race-details", liveHandler.RaceDetails)
			lr.Get("/data", liveHandler.Data)
			lr.Get("/chart-data", liveHandler.ChartData)
			lr.Get("/track-map", liveHandler.TrackMap)
		})
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
