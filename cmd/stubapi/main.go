package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/config"
	"github.com/spec-kit/course-admin/internal/observability"
	"github.com/spec-kit/course-admin/internal/stubapi"
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

	app, err := stubapi.New(cfg.Stub, logger)
	if err != nil {
		logger.Fatal("failed to build stub", zap.Error(err))
	}

	logger.Info("stub platform API starting",
		zap.String("addr", cfg.Stub.Addr()),
		zap.String("admin_email", cfg.Stub.AdminEmail))

	go func() {
		if err := app.Listen(cfg.Stub.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))

	_ = app.Shutdown()
}
