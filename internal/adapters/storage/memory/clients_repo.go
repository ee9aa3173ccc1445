package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-clients/internal/domain/clients"

	"github.com/google/uuid"
)

// clientsRepo simula la tabla remota en proceso (modo dev / tests).
// Igual que el servicio real, asigna id y created_at.
type clientsRepo struct {
	mu   sync.RWMutex
	rows []clients.Client
	now  func() time.Time
}

func NewClientsRepo() clients.Repository {
	return newClientsRepo(time.Now)
}

func newClientsRepo(now func() time.Time) *clientsRepo {
	return &clientsRepo{
		rows: make([]clients.Client, 0),
		now:  now,
	}
}

func (r *clientsRepo) Create(ctx context.Context, in clients.NewClient) error {
	animal := strings.TrimSpace(string(in.Animal))
	if animal == "" {
		return errors.New("animal required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, clients.Client{
		ID:        uuid.NewString(),
		Animal:    clients.Animal(animal),
		CreatedAt: r.now().UTC(),
	})
	return nil
}

func (r *clientsRepo) ListNewestFirst(ctx context.Context) ([]clients.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Recorremos al revés para que, a igual created_at, gane el último insert.
	out := make([]clients.Client, 0, len(r.rows))
	for i := len(r.rows) - 1; i >= 0; i-- {
		out = append(out, r.rows[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
