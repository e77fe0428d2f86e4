package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"

	"github.com/skillswap/skillswap-backend/api/controllers"
	"github.com/skillswap/skillswap-backend/api/routes"
	"github.com/skillswap/skillswap-backend/internal/fixtures"
	"github.com/skillswap/skillswap-backend/internal/messages"
	"github.com/skillswap/skillswap-backend/internal/notifications"
	"github.com/skillswap/skillswap-backend/internal/recordstore"
	"github.com/skillswap/skillswap-backend/internal/sessions"
	"github.com/skillswap/skillswap-backend/internal/skills"
	"github.com/skillswap/skillswap-backend/internal/users"
	"github.com/skillswap/skillswap-backend/pkg/config"
	"github.com/skillswap/skillswap-backend/pkg/logger"
	"github.com/skillswap/skillswap-backend/pkg/metrics"
	"github.com/skillswap/skillswap-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

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

	// Ratings render as JSON numbers, matching the seed files.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	loc, err := cfg.Calendar.Location()
	if err != nil {
		logg.Error(ctx, "failed to load calendar time zone", err)
		os.Exit(1)
	}

	seed, err := fixtures.Load()
	if err != nil {
		logg.Error(ctx, "failed to load seed data", err)
		os.Exit(1)
	}

	deps := recordstore.Deps{
		LatencyEnabled: cfg.Latency.Enabled,
		LatencyScale:   cfg.Latency.Scale,
		Clock:          recordstore.RealClock{},
		Metrics:        metrics.NewStoreMetrics(registry),
		Logger:         logg,
	}

	skillRepo, err := skills.NewRepository(deps, seed.Skills)
	if err != nil {
		logg.Error(ctx, "failed to build skills store", err)
		os.Exit(1)
	}
	sessionRepo, err := sessions.NewRepository(deps, seed.Sessions)
	if err != nil {
		logg.Error(ctx, "failed to build sessions store", err)
		os.Exit(1)
	}
	messageRepo, err := messages.NewRepository(deps, seed.Messages)
	if err != nil {
		logg.Error(ctx, "failed to build messages store", err)
		os.Exit(1)
	}
	notificationRepo, err := notifications.NewRepository(deps, seed.Notifications)
	if err != nil {
		logg.Error(ctx, "failed to build notifications store", err)
		os.Exit(1)
	}
	userRepo, err := users.NewRepository(deps, seed.Users)
	if err != nil {
		logg.Error(ctx, "failed to build users store", err)
		os.Exit(1)
	}

	skillService, err := skills.NewService(skillRepo)
	if err != nil {
		logg.Error(ctx, "failed to create skills service", err)
		os.Exit(1)
	}
	sessionService, err := sessions.NewService(sessionRepo, loc, deps.Clock)
	if err != nil {
		logg.Error(ctx, "failed to create sessions service", err)
		os.Exit(1)
	}
	messageService, err := messages.NewService(messageRepo)
	if err != nil {
		logg.Error(ctx, "failed to create messages service", err)
		os.Exit(1)
	}
	notificationService, err := notifications.NewService(notificationRepo)
	if err != nil {
		logg.Error(ctx, "failed to create notifications service", err)
		os.Exit(1)
	}
	userService, err := users.NewService(userRepo, skillService)
	if err != nil {
		logg.Error(ctx, "failed to create users service", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()
	// A nil *redis.Client must not reach the router as a non-nil interface.
	var routerRedis routes.RedisClient
	if redisClient != nil {
		routerRedis = redisClient
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":             cfg.App.Env,
		"addr":            addr,
		"latency_enabled": cfg.Latency.Enabled,
		"calendar_tz":     loc.String(),
	})
	logg.Info(logCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:        cfg,
			Logger:        logg,
			Redis:         routerRedis,
			Gatherer:      registry,
			Stores:        []controllers.RecordCounter{skillRepo, sessionRepo, messageRepo, notificationRepo, userRepo},
			Skills:        skillService,
			Sessions:      sessionService,
			Messages:      messageService,
			Notifications: notificationService,
			Users:         userService,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(logCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(logCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(logCtx, "api server shutdown failed", err)
		}
	}
}
