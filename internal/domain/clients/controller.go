package clients

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"pet-clients/internal/platform/logger"
)

// Controller sincroniza el Store con la tabla remota.
// Es seguro para uso concurrente; nunca mantiene el lock durante una llamada remota.
type Controller struct {
	repo Repository
	log  logger.Logger

	mu    sync.Mutex
	store Store
	gen   uint64 // generación de la última lectura pedida
}

func NewController(repo Repository, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		repo:  repo,
		log:   log.With(map[string]any{"component": "clients"}),
		store: newStore(),
	}
}

// Snapshot devuelve una copia del estado actual.
func (c *Controller) Snapshot() Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.clone()
}

// LoadAll lee todas las filas (created_at desc) y reemplaza Clients.
// Si falla, el Store queda como estaba y se emite un read_failure.
// Respuestas de una generación vieja o con ctx cancelado se descartan.
func (c *Controller) LoadAll(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.store.Read = ReadLoading
	c.mu.Unlock()

	items, err := c.repo.ListNewestFirst(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	current := gen == c.gen
	if current {
		c.store.Read = ReadIdle
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		c.log.Error("error fetching clients", map[string]any{
			"kind":       KindReadFailure,
			"error":      err,
			"generation": gen,
		})
		return &ReadFailure{Err: err}
	}

	if !current || ctx.Err() != nil {
		c.log.Debug("discarding stale clients response", map[string]any{
			"generation": gen,
			"latest":     c.gen,
		})
		return ctx.Err()
	}

	c.store.Clients = newestFirst(items)
	return nil
}

// AddRecord inserta una fila y, si sale bien, limpia la selección y recarga.
// Con Animal vacío no hace nada y devuelve ErrInvalidInput.
// Si el insert falla el estado transitorio queda igual para que el usuario reintente.
func (c *Controller) AddRecord(ctx context.Context, in NewClient) error {
	animal := Animal(strings.TrimSpace(string(in.Animal)))
	if animal == "" {
		return ErrInvalidInput
	}

	c.mu.Lock()
	if c.store.Write == WriteSubmitting {
		c.mu.Unlock()
		return ErrBusy
	}
	c.store.Write = WriteSubmitting
	c.mu.Unlock()

	err := c.repo.Create(ctx, NewClient{Animal: animal})

	c.mu.Lock()
	c.store.Write = WriteIdle
	if err != nil {
		wf := &WriteFailure{Err: err}
		c.store.LastWriteError = wf
		c.mu.Unlock()

		c.log.Error("error inserting client", map[string]any{
			"kind":   KindWriteFailure,
			"error":  err,
			"animal": string(animal),
		})
		return wf
	}
	c.store.SelectedAnimal = ""
	c.store.ShowAddModal = false
	c.store.LastWriteError = nil
	c.mu.Unlock()

	c.log.Info("client created", map[string]any{"animal": string(animal)})

	// write antes que read: la recarga sale recién cuando el insert terminó.
	return c.LoadAll(ctx)
}

// SubmitSelection es el botón "Add Client" del modal: inserta el animal seleccionado.
func (c *Controller) SubmitSelection(ctx context.Context) error {
	c.mu.Lock()
	selected := c.store.SelectedAnimal
	c.mu.Unlock()
	return c.AddRecord(ctx, NewClient{Animal: selected})
}

func (c *Controller) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.SearchTerm = term
}

func (c *Controller) OpenAddModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.ShowAddModal = true
}

// CloseAddModal es "Cancel": cierra el modal y descarta la selección.
func (c *Controller) CloseAddModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.ShowAddModal = false
	c.store.SelectedAnimal = ""
}

func (c *Controller) SelectAnimal(a Animal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.SelectedAnimal = Animal(strings.TrimSpace(string(a)))
}

// newestFirst copia items ordenando por CreatedAt desc.
// Es estable: ante empate se respeta el orden del servidor.
func newestFirst(items []Client) []Client {
	out := make([]Client, len(items))
	copy(out, items)
	slices.SortStableFunc(out, func(a, b Client) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
