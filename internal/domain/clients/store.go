package clients

type ReadPhase string

const (
	ReadIdle    ReadPhase = "idle"
	ReadLoading ReadPhase = "loading"
)

type WritePhase string

const (
	WriteIdle       WritePhase = "idle"
	WriteSubmitting WritePhase = "submitting"
)

// Store es el estado de la vista: filas visibles + estado transitorio de la UI.
// Solo el Controller lo modifica; afuera se usa la copia que devuelve Snapshot().
type Store struct {
	Clients []Client

	SearchTerm     string
	ShowAddModal   bool
	SelectedAnimal Animal

	Read  ReadPhase
	Write WritePhase

	// LastWriteError guarda el último WriteFailure para mostrarlo al usuario.
	// Se limpia con el siguiente insert exitoso.
	LastWriteError error
}

func newStore() Store {
	return Store{
		Clients: []Client{},
		Read:    ReadIdle,
		Write:   WriteIdle,
	}
}

// Filtered aplica SearchTerm sobre Clients.
func (s Store) Filtered() []Client {
	return Filter(s.Clients, s.SearchTerm)
}

func (s Store) clone() Store {
	out := s
	out.Clients = make([]Client, len(s.Clients))
	copy(out.Clients, s.Clients)
	return out
}
