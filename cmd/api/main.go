package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/admin-dashboard/internal/api/http"
	"github.com/spec-kit/admin-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/admin-dashboard/internal/auth"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/events"
	"github.com/spec-kit/admin-dashboard/internal/observability"
	"github.com/spec-kit/admin-dashboard/internal/persistence"
	"github.com/spec-kit/admin-dashboard/internal/repository"
	"github.com/spec-kit/admin-dashboard/internal/service"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	var publisher service.EventPublisher
	if redis.Enabled() {
		publisher = redis
	}
	audit := service.NewAuditService(dispatcher, logger, metrics, publisher, cfg.Redis.EventsChannel)
	audit.RegisterHandlers()

	st := store.New()

	policy, err := service.NewStatusPolicy(cfg.Dashboard.StatusPolicy, nil)
	if err != nil {
		logger.Fatal("invalid status policy", zap.Error(err))
	}

	userService := service.NewUserService(service.UserDependencies{
		Store:        st,
		Directory:    repository.NewUserDirectory(cfg.Directory.BaseURL, cfg.Directory.Timeout()),
		StatusPolicy: policy,
		Dispatcher:   dispatcher,
		Logger:       logger,
		PageSize:     cfg.Dashboard.PageSize,
	})

	var source service.AnalyticsSource = service.MockAnalyticsSource{}
	if cfg.Dashboard.AnalyticsDeriveActive {
		source = service.DerivedAnalyticsSource{Base: source, Store: st}
	}
	analyticsService := service.NewAnalyticsService(st, source, dispatcher, logger)

	authService, err := service.NewAuthService(cfg.Auth, st, dispatcher, logger)
	if err != nil {
		logger.Fatal("failed to init auth", zap.Error(err))
	}

	app := httptransport.NewApp(cfg.App.Name, logger, metrics, cfg.App.RequestTimeout(), httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		State:          handlers.NewStateHandler(st),
		AuthMiddleware: auth.NewAuthMiddleware(authService),
		RequireSession: cfg.Auth.RequireSession,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("directory", cfg.Directory.BaseURL))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.RequestTimeout()+5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
