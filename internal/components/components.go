package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"racecontrol/internal/api"
	"racecontrol/internal/config"
	"racecontrol/internal/redis"
	"racecontrol/internal/service"
	"racecontrol/internal/storage/jsonfile"
	"racecontrol/internal/ws"
	"racecontrol/pkg/logger"
)

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	Hub           *ws.Hub
	Store         *jsonfile.Store
	Redis         *redis.Redis
	WebhookSender *service.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing store",
		slog.String("incidents_file", cfg.Storage.IncidentsPath),
		slog.String("users_file", cfg.Storage.UsersPath),
	)
	store := jsonfile.NewStore(cfg.Storage.IncidentsPath, cfg.Storage.UsersPath, logger)

	hub := ws.NewHub(logger)

	var (
		redisClient   *redis.Redis
		webhookQueue  service.WebhookQueue
		webhookSender *service.WebhookSender
	)
	if cfg.WebhooksEnabled() {
		logger.Info("Initializing Redis")
		rc, err := redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		redisClient = rc

		queue := redis.NewWebhookQueue(rc.Client, "webhooks:queue")
		webhookQueue = queue
		webhookSender = service.NewWebhookSender(logger, cfg.Webhook, queue)
	}

	incidentSvc := service.NewIncidentService(store, hub, webhookQueue, logger)
	dashboardSvc := service.NewDashboardService(store, cfg.Live.Seed)
	liveSvc := service.NewLiveService(cfg.Live.Seed)
	authSvc := service.NewAuthService(store, logger)

	srv := service.NewService(incidentSvc, dashboardSvc, liveSvc, authSvc)

	httpServer := api.NewServer(cfg, logger, srv, hub)
	logger.Info("Initialized server")

	return &Components{
		logger:        logger,
		HttpServer:    httpServer,
		Hub:           hub,
		Store:         store,
		Redis:         redisClient,
		WebhookSender: webhookSender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Hub.Shutdown()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
