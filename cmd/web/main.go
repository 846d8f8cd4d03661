package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/config"
	"github.com/spec-kit/course-admin/internal/guard"
	"github.com/spec-kit/course-admin/internal/observability"
	"github.com/spec-kit/course-admin/internal/persistence"
	"github.com/spec-kit/course-admin/internal/session"
	"github.com/spec-kit/course-admin/internal/upstream"
	"github.com/spec-kit/course-admin/internal/web"
	"github.com/spec-kit/course-admin/internal/web/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage, backend, cleanup, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init session storage", zap.Error(err))
	}
	defer cleanup()

	client := upstream.NewClient(cfg.Upstream, logger)
	client.SetUnauthorizedHook(func(ctx context.Context) {
		store, ok := session.FromContext(ctx)
		if !ok {
			return
		}
		if err := store.Logout(ctx); err != nil {
			logger.Warn("failed to clear rejected session", zap.Error(err))
		}
	})

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		Views:   web.NewEngine(),
	})
	web.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	sessionMiddleware := guard.NewSessionMiddleware(storage, cfg.Session, logger)
	routeGuard := guard.NewGuard(cfg.Guard, logger)

	web.RegisterRoutes(app, web.RouteConfig{
		Session:       sessionMiddleware,
		Guard:         routeGuard,
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Session.Backend, backend),
		Auth:          handlers.NewAuthHandler(client, logger),
		Dashboard:     handlers.NewDashboardHandler(client, logger),
		Users:         handlers.NewUsersHandler(client, logger),
		Courses:       handlers.NewCoursesHandler(client, logger),
		Videos:        handlers.NewVideosHandler(client, logger),
		Payments:      handlers.NewPaymentsHandler(client, logger),
		Reviews:       handlers.NewReviewsHandler(client, logger),
		Companies:     handlers.NewCompaniesHandler(client, logger),
		Announcements: handlers.NewAnnouncementsHandler(client, logger),
		Settings:      handlers.NewSettingsHandler(client, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// buildStorage selects the durable session medium from configuration. The
// returned pinger feeds the readiness probe; it is nil for the in-memory
// medium, which has nothing to reach.
func buildStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Storage, handlers.StoragePinger, func(), error) {
	switch cfg.Session.Backend {
	case "postgres":
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, nil, nil, err
			}
		}
		return session.NewPostgresStorage(pg.PoolHandle()), pg, pg.Close, nil
	case "memory":
		logger.Warn("using in-memory session storage; sessions will not survive restarts")
		return session.NewMemoryStorage(), nil, func() {}, nil
	default:
		rd := persistence.NewRedis(cfg.Redis, logger)
		return session.NewRedisStorage(rd.Client, cfg.Session.TTL()), rd, rd.Close, nil
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
