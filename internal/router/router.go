package router

import (
	"net/http"

	_ "pet-clients/docs"
	mem "pet-clients/internal/adapters/storage/memory"
	"pet-clients/internal/domain/clients"
	"pet-clients/internal/middleware"
	"pet-clients/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, in-memory.
	Repo clients.Repository

	// Opcional: si no viene, no se loguea nada.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	repo := opts.Repo
	if repo == nil {
		log.Warn("no repository configured, using in-memory store", nil)
		repo = mem.NewClientsRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", healthHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	clients.RegisterRoutes(r, repo, log)

	return r
}

// healthHandler godoc
// @Summary Chequeo de vida
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
