package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pet-clients/internal/adapters/storage"
	"pet-clients/internal/config"
	"pet-clients/internal/domain/clients"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(openFromConfig)
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// openFromConfig arma el repositorio igual que el server: defaults -> YAML -> env.
func openFromConfig(ctx context.Context) (clients.Repository, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return storage.Open(ctx, cfg)
}
