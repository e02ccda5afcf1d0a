package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/schedule-manager/internal/activity"
	httptransport "github.com/spec-kit/schedule-manager/internal/api/http"
	"github.com/spec-kit/schedule-manager/internal/api/http/handlers"
	"github.com/spec-kit/schedule-manager/internal/auth"
	"github.com/spec-kit/schedule-manager/internal/config"
	"github.com/spec-kit/schedule-manager/internal/observability"
	"github.com/spec-kit/schedule-manager/internal/persistence"
	"github.com/spec-kit/schedule-manager/internal/repository"
	"github.com/spec-kit/schedule-manager/internal/service"
	"github.com/spec-kit/schedule-manager/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Load configuration from the environment, apply pending migrations when
POSTGRES_RUN_MIGRATIONS is set, and serve the API until SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			return err
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	var cachePinger handlers.Pinger
	if redis.Enabled() {
		eventRepo = repository.NewCachedEventRepository(eventRepo, redis.Client, cfg.Redis.CacheTTL(), logger.Named("cache"))
		cachePinger = redis
	}

	metrics := observability.NewMetrics("schedule_manager")
	dispatcher := activity.NewInMemoryDispatcher(logger.Named("activity"))
	worker.StartActivityMetrics(dispatcher, metrics)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger.Named("auth"))
	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo: userRepo,
		Tokens:   tokens,
		Activity: dispatcher,
		Logger:   logger.Named("auth"),
	})
	eventService := service.NewEventService(eventRepo, dispatcher)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:     logger,
		Metrics:    metrics,
		Timeout:    cfg.App.RequestTimeout(),
		Production: cfg.App.IsProduction(),
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, cachePinger),
		Auth:           handlers.NewAuthHandler(authService),
		Events:         handlers.NewEventsHandler(eventService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens),
		Metrics:        metrics,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		errCh <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("fiber listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
