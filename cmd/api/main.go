package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/hotelsuite/api"
	"github.com/angelmondragon/hotelsuite/api/controllers"
	"github.com/angelmondragon/hotelsuite/api/routes"
	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/internal/dashboard"
	"github.com/angelmondragon/hotelsuite/internal/furniture"
	"github.com/angelmondragon/hotelsuite/internal/reservations"
	"github.com/angelmondragon/hotelsuite/internal/scene"
	"github.com/angelmondragon/hotelsuite/pkg/config"
	"github.com/angelmondragon/hotelsuite/pkg/db"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
	"github.com/angelmondragon/hotelsuite/pkg/metrics"
	"github.com/angelmondragon/hotelsuite/pkg/migrate"
	"github.com/angelmondragon/hotelsuite/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

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

	furnitureMetrics := metrics.NewFurnitureMetrics(prometheus.DefaultRegisterer)
	local := furniture.NewLocalStorage(redisClient, cfg.Furniture.StorageKey)
	var remote furniture.Source = furniture.NewRepository(dbClient)
	if cfg.Furniture.Remote == config.FurnitureRemoteAPI {
		remote = furniture.NewRemoteSource(backendClient)
	}
	rooms := furniture.NewRooms(func(roomID string) (furniture.Store, error) {
		return furniture.NewStore(furniture.StoreParams{
			RoomID:       roomID,
			Local:        local,
			Remote:       remote,
			Logger:       logg,
			Metrics:      furnitureMetrics,
			WriteTimeout: cfg.Furniture.WriteTimeout,
		})
	})

	// the default room is opened eagerly so a broken store surfaces at boot
	if cfg.Furniture.RoomID != "" {
		warmCtx := logg.WithRoomID(context.Background(), cfg.Furniture.RoomID)
		if _, err := rooms.Get(warmCtx, cfg.Furniture.RoomID); err != nil {
			logg.Warn(logg.WithField(warmCtx, "error", err.Error()), "default room not loaded; it will be retried on first request")
		} else {
			logg.Info(warmCtx, "default room loaded")
		}
	}

	bookings, err := reservations.NewService(reservations.ServiceParams{Client: backendClient})
	if err != nil {
		logg.Error(context.Background(), "failed to create reservations service", err)
		os.Exit(1)
	}

	loader, err := scene.NewLoader(scene.LoaderParams{
		BaseURL:     cfg.Scene.AssetBaseURL,
		Concurrency: cfg.Scene.FetchConcurrency,
		Timeout:     cfg.API.Timeout,
		Logger:      logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create scene loader", err)
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

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	router := routes.NewRouter(cfg, logg, dbClient, redisClient, rooms, bookings, controllers.SceneDeps{
		Shell:       scene.DefaultShell(),
		Catalog:     scene.DefaultCatalog(),
		Loader:      loader,
		SettleDelay: cfg.Scene.SettleDelay,
	}, dashboards)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"remote": cfg.Furniture.Remote,
	})
	logg.Info(ctx, "starting api server")

	server := api.NewServer(addr, mux, logg)
	server.OnShutdown(rooms.FlushAll)
	if err := server.Run(ctx); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}
