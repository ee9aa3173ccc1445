package clients

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-clients/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta la página y la API JSON.
// Cada request arma su propio Controller (equivale a montar la vista).
func RegisterRoutes(r chi.Router, repo Repository, log logger.Logger) {
	newController := func() *Controller { return NewController(repo, log) }

	// Página HTML
	r.Get("/", pageHandler(newController))
	r.Post("/", submitPageHandler(newController))

	// API JSON
	r.Route("/clients", func(cr chi.Router) {
		cr.Get("/", listClientsHandler(newController))
		cr.Post("/", createClientHandler(newController))
	})
	r.Get("/animals", listAnimalsHandler())
}

// createClientRequest es el cuerpo para registrar un cliente.
type createClientRequest struct {
	Animal Animal `json:"animal" enums:"puppy,turtle,cat"`
}

// clientResponse es una fila de la tabla clients tal como la devuelve la API.
type clientResponse struct {
	ID        string    `json:"id"`
	Animal    Animal    `json:"animal"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// animalResponse es una opción del selector de animales.
type animalResponse struct {
	Animal Animal `json:"animal"`
	Emoji  string `json:"emoji"`
}

// listClientsHandler godoc
// @Summary Listar clientes
// @Description Devuelve todos los clientes, el más nuevo primero. `search` filtra por animal (substring, sin distinguir mayúsculas).
// @Tags clients
// @Produce json
// @Param search query string false "Texto a buscar en animal"
// @Success 200 {array} clientResponse
// @Failure 502 {string} string "error fetching clients"
// @Router /clients [get]
func listClientsHandler(newController func() *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl := newController()
		if err := ctrl.LoadAll(r.Context()); err != nil {
			http.Error(w, "error fetching clients", http.StatusBadGateway)
			return
		}

		ctrl.SetSearchTerm(r.URL.Query().Get("search"))
		writeJSON(w, http.StatusOK, toClientResponses(ctrl.Snapshot().Filtered()))
	}
}

// createClientHandler godoc
// @Summary Crear cliente
// @Description Inserta un cliente; el servicio remoto asigna id y created_at. Responde con la lista recargada.
// @Description Si el insert salió bien pero falló la recarga responde 201 sin body.
// @Tags clients
// @Accept json
// @Produce json
// @Param payload body createClientRequest true "Animal del cliente"
// @Success 201 {array} clientResponse
// @Header 201 {string} X-Reload-Failed "true cuando el insert salió bien pero falló la recarga"
// @Failure 400 {string} string "invalid json / animal required"
// @Failure 502 {string} string "error inserting client"
// @Router /clients [post]
func createClientHandler(newController func() *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctrl := newController()
		err := ctrl.AddRecord(r.Context(), NewClient{Animal: req.Animal})

		var (
			wf *WriteFailure
			rf *ReadFailure
		)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, toClientResponses(ctrl.Snapshot().Clients))
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "animal required", http.StatusBadRequest)
		case errors.As(err, &wf):
			http.Error(w, "error inserting client", http.StatusBadGateway)
		case errors.As(err, &rf):
			// El insert se hizo; sin recarga no hay lista que devolver.
			w.Header().Set("X-Reload-Failed", "true")
			w.WriteHeader(http.StatusCreated)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales disponibles
// @Tags clients
// @Produce json
// @Success 200 {array} animalResponse
// @Router /animals [get]
func listAnimalsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		choices := Choices()
		out := make([]animalResponse, 0, len(choices))
		for _, a := range choices {
			out = append(out, animalResponse{Animal: a, Emoji: Emoji(a)})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// pageHandler renderiza la página. Query params:
// search=texto, add=1 (modal abierto), animal=<selección>.
func pageHandler(newController func() *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl := newController()
		// Si falla la lectura la página sale vacía; el error ya quedó en el log.
		_ = ctrl.LoadAll(r.Context())

		q := r.URL.Query()
		ctrl.SetSearchTerm(q.Get("search"))
		if q.Get("add") == "1" {
			ctrl.OpenAddModal()
			ctrl.SelectAnimal(Animal(q.Get("animal")))
		}

		renderPage(w, r, http.StatusOK, ctrl.Snapshot())
	}
}

// submitPageHandler recibe el form del modal (campo "animal").
func submitPageHandler(newController func() *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		ctrl := newController()
		ctrl.OpenAddModal()
		ctrl.SelectAnimal(Animal(r.PostFormValue("animal")))

		err := ctrl.SubmitSelection(r.Context())

		var wf *WriteFailure
		switch {
		case errors.Is(err, ErrInvalidInput):
			http.Redirect(w, r, "/?add=1", http.StatusSeeOther)
		case errors.As(err, &wf):
			// Mostramos el error con el modal abierto para que el usuario reintente.
			_ = ctrl.LoadAll(r.Context())
			renderPage(w, r, http.StatusBadGateway, ctrl.Snapshot())
		default:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		}
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, status int, s Store) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = Page(s).Render(r.Context(), w)
}

func pageURL(search string, add bool, animal Animal) string {
	v := url.Values{}
	if strings.TrimSpace(search) != "" {
		v.Set("search", search)
	}
	if add {
		v.Set("add", "1")
	}
	if animal != "" {
		v.Set("animal", string(animal))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

func toClientResponses(items []Client) []clientResponse {
	out := make([]clientResponse, 0, len(items))
	for _, c := range items {
		out = append(out, clientResponse{
			ID:        c.ID,
			Animal:    c.Animal,
			Emoji:     Emoji(c.Animal),
			CreatedAt: c.CreatedAt,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
