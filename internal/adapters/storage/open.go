package storage

import (
	"context"
	"fmt"

	"pet-clients/internal/adapters/storage/memory"
	"pet-clients/internal/adapters/storage/postgres"
	"pet-clients/internal/adapters/storage/postgrest"
	"pet-clients/internal/adapters/storage/sqlite"
	"pet-clients/internal/config"
	"pet-clients/internal/domain/clients"
)

// Open arma el repositorio de clients según cfg.Store.
// closeFn libera conexiones; nunca es nil.
func Open(ctx context.Context, cfg config.Config) (clients.Repository, func() error, error) {
	noop := func() error { return nil }

	switch store := cfg.ResolvedStore(); store {
	case config.StorePostgREST:
		r, err := postgrest.NewClientsRepo(postgrest.Config{
			BaseURL: cfg.Supabase.URL,
			APIKey:  cfg.Supabase.AnonKey,
			Table:   cfg.Table,
			Timeout: cfg.HTTPTimeout,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("open postgrest store: %w", err)
		}
		return r, noop, nil

	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("open postgres store: %w", err)
		}
		return postgres.NewClientsRepo(db, cfg.Table), db.Close, nil

	case config.StoreSQLite:
		db, err := sqlite.NewDB(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite store: %w", err)
		}
		if err := db.EnsureSchema(ctx, cfg.Table); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("open sqlite store: %w", err)
		}
		return sqlite.NewClientsRepo(db, cfg.Table), db.Close, nil

	case config.StoreMemory:
		return memory.NewClientsRepo(), noop, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown store %q", config.ErrInvalidConfig, store)
	}
}
