package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-clients/internal/adapters/storage"
	"pet-clients/internal/config"
	"pet-clients/internal/platform/logger"
	"pet-clients/internal/router"

	"golang.org/x/sync/errgroup"
)

// @title Pet Clients API
// @version 1.0
// @description Registro de clientes (solo tipo de animal, sin PHI).
// @BasePath /
func main() {
	log := logger.NewFromEnv()
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err})
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *logger.ZapLogger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			log.Warn("close store", map[string]any{"error": err})
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Repo: repo, Logger: log}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": cfg.Store})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
