package tui

import (
	"context"
	"errors"
	"strings"

	"pet-clients/internal/domain/clients"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const tilesPerRow = 4

// loadedMsg llega cuando termina un LoadAll lanzado como tea.Cmd.
type loadedMsg struct{ err error }

// addedMsg llega cuando termina un SubmitSelection (insert + recarga).
type addedMsg struct{ err error }

// Model es la versión terminal de la página de clientes.
// El estado de dominio vive en el Controller; acá solo hay estado de pantalla.
type Model struct {
	ctx  context.Context
	ctrl *clients.Controller

	search      textinput.Model
	searchFocus bool

	// choice es el índice en clients.Choices() marcado en el modal; -1 = ninguno.
	choice int

	// submitting se prende al despachar addCmd y se apaga con addedMsg.
	// El Controller marca WriteSubmitting recién cuando el comando corre.
	submitting bool

	status string
	width  int
	styles styles
}

func NewModel(ctx context.Context, ctrl *clients.Controller) Model {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Prompt = "🔍 "
	ti.CharLimit = 64

	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		search: ti,
		choice: -1,
		styles: defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return loadedMsg{err: ctrl.LoadAll(ctx)}
	}
}

// addCmd corre el write y, si sale bien, la recarga; las dos en secuencia dentro del Controller.
func (m Model) addCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return addedMsg{err: ctrl.SubmitSelection(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case loadedMsg:
		m.status = ""
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.status = "could not load clients (press r to retry)"
		}
		return m, nil

	case addedMsg:
		m.submitting = false
		var rf *clients.ReadFailure
		switch {
		case msg.err == nil:
			m.choice = -1
			m.status = "client added"
		case errors.Is(msg.err, clients.ErrInvalidInput):
			m.status = "select an animal first"
		case errors.Is(msg.err, clients.ErrBusy):
			m.status = "an add is already in progress"
		case errors.As(msg.err, &rf):
			m.choice = -1
			m.status = "client added, but reload failed (press r)"
		default:
			// El banner del modal sale de LastWriteError.
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.searchFocus {
			return m.updateSearch(msg)
		}
		if m.ctrl.Snapshot().ShowAddModal {
			return m.updateModal(msg)
		}
		return m.updateMain(msg)
	}

	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.searchFocus = true
		return m, m.search.Focus()
	case "a":
		m.ctrl.OpenAddModal()
		m.choice = -1
		m.status = ""
		return m, nil
	case "r":
		m.status = "loading..."
		return m, m.loadCmd()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyEnter:
		m.searchFocus = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.ctrl.SetSearchTerm(m.search.Value())
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := clients.Choices()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.ctrl.CloseAddModal()
		m.choice = -1
		return m, nil
	case "left", "h":
		if m.choice <= 0 {
			m.choice = len(choices) - 1
		} else {
			m.choice--
		}
		m.ctrl.SelectAnimal(choices[m.choice])
		return m, nil
	case "right", "l":
		m.choice = (m.choice + 1) % len(choices)
		m.ctrl.SelectAnimal(choices[m.choice])
		return m, nil
	case "enter":
		s := m.ctrl.Snapshot()
		if m.submitting || s.Write == clients.WriteSubmitting {
			return m, nil
		}
		if s.SelectedAnimal == "" {
			m.status = "select an animal first"
			return m, nil
		}
		m.submitting = true
		m.status = "adding..."
		return m, m.addCmd()
	}
	return m, nil
}

func (m Model) View() string {
	s := m.ctrl.Snapshot()
	st := m.styles

	var b strings.Builder

	b.WriteString(st.title.Render("Clients"))
	b.WriteString("\n")

	searchStyle := st.search
	if m.searchFocus {
		searchStyle = st.searchActive
	}
	b.WriteString(searchStyle.Render(m.search.View()))
	b.WriteString("\n")
	b.WriteString(st.note.Render("*only puppy is available right now"))
	b.WriteString("\n\n")

	items := s.Filtered()
	if len(items) == 0 {
		b.WriteString(st.status.Render("No clients"))
		b.WriteString("\n")
	} else {
		tiles := make([]string, 0, len(items))
		for _, c := range items {
			tiles = append(tiles, st.tile.Render(clients.Emoji(c.Animal)))
		}
		b.WriteString(grid(tiles))
	}

	b.WriteString("\n")
	b.WriteString(st.button.Render("a  Add Client"))
	b.WriteString("\n")
	b.WriteString(st.notice.Render("To be HIPAA compliant, clients are stored as animals and are not attached to any PHI"))
	b.WriteString("\n")

	if s.ShowAddModal {
		b.WriteString("\n")
		b.WriteString(m.viewModal(s))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(st.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(st.help.Render(m.helpLine(s)))

	return b.String()
}

func (m Model) viewModal(s clients.Store) string {
	st := m.styles

	var b strings.Builder
	b.WriteString(st.title.Render("Select Animal Type"))
	b.WriteString("\n")

	if s.LastWriteError != nil {
		b.WriteString(st.errorBanner.Render("Could not add client, please try again."))
		b.WriteString("\n")
	}

	tiles := make([]string, 0, len(clients.Choices()))
	for _, a := range clients.Choices() {
		style := st.tile
		if strings.EqualFold(string(s.SelectedAnimal), string(a)) {
			style = st.tileSelected
		}
		tiles = append(tiles, style.Render(clients.Emoji(a)+"\n"+string(a)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	b.WriteString("\n")

	if m.submitting || s.Write == clients.WriteSubmitting {
		b.WriteString(st.status.Render("adding..."))
	} else {
		b.WriteString(st.help.Render("←/→ choose · enter add · esc cancel"))
	}

	return st.modal.Render(b.String())
}

func (m Model) helpLine(s clients.Store) string {
	switch {
	case m.searchFocus:
		return "enter/esc done"
	case s.ShowAddModal:
		return ""
	default:
		return "/ search · a add · r reload · q quit"
	}
}

func grid(tiles []string) string {
	var rows []string
	for i := 0; i < len(tiles); i += tilesPerRow {
		end := min(i+tilesPerRow, len(tiles))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}
