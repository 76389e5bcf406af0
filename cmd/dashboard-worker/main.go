package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/internal/cron"
	"github.com/angelmondragon/hotelsuite/internal/dashboard"
	"github.com/angelmondragon/hotelsuite/internal/establishments"
	"github.com/angelmondragon/hotelsuite/pkg/config"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
	"github.com/angelmondragon/hotelsuite/pkg/metrics"
	"github.com/angelmondragon/hotelsuite/pkg/redis"
)

const lockScope = "dashboard-worker"

func main() {
	logg := logger.New(logger.Options{ServiceName: "dashboard-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "dashboard-worker"

	logg = logger.New(logger.Options{
		ServiceName: "dashboard-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	tokens := backend.NewRedisTokenStore(redisClient, cfg.API.TokenKey)
	if cfg.API.ServiceToken != "" {
		if err := tokens.SetToken(context.Background(), cfg.API.ServiceToken); err != nil {
			logg.Error(context.Background(), "failed to seed service token", err)
			os.Exit(1)
		}
	}
	backendClient, err := backend.NewClient(backend.ClientParams{
		Config:    cfg.API,
		Tokens:    tokens,
		Navigator: backend.NewLocationRecorder(logg),
		Logger:    logg,
		Metrics:   metrics.NewBackendMetrics(prometheus.DefaultRegisterer),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create backend client", err)
		os.Exit(1)
	}

	dashboardParams, err := dashboard.WithFacades(dashboard.ServiceParams{
		Cache:    redisClient,
		CacheTTL: cfg.Dashboard.CacheTTL(),
		Notifier: dashboard.LogNotifier{Logger: logg},
		Logger:   logg,
	}, backendClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create resource services", err)
		os.Exit(1)
	}
	dashboards, err := dashboard.NewService(dashboardParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	directory, err := establishments.NewService(establishments.ServiceParams{Client: backendClient})
	if err != nil {
		logg.Error(context.Background(), "failed to create establishments service", err)
		os.Exit(1)
	}

	refreshJob, err := cron.NewDashboardRefreshJob(cron.DashboardRefreshJobParams{
		Logger:         logg,
		Dashboards:     dashboards,
		Establishments: strings.Split(cfg.Dashboard.EstablishmentID, ","),
		Directory:      directory,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard refresh job", err)
		os.Exit(1)
	}

	lock, err := cron.NewRedisLock(redisClient, redisClient.LockKey(lockScope, cfg.App.Env), 0)
	if err != nil {
		logg.Error(context.Background(), "failed to create worker lock", err)
		os.Exit(1)
	}

	registry, err := cron.NewRegistry(refreshJob)
	if err != nil {
		logg.Error(context.Background(), "failed to register jobs", err)
		os.Exit(1)
	}

	service, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: registry,
		Lock:     lock,
		Metrics:  metrics.NewPollJobMetrics(prometheus.DefaultRegisterer),
		Interval: cfg.Dashboard.PollInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create poll service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
		"interval":    cfg.Dashboard.PollInterval.String(),
	})
	logg.Info(ctx, "starting dashboard worker")

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "dashboard worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "dashboard worker shutting down gracefully")
}
