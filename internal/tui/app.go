// Package tui renders the project board and maps keyboard gestures onto
// the drag-and-drop protocol.
//
// The pick-up/drop gesture follows the three-phase drag contract:
// grabbing an item begins a gesture with the record ID as payload,
// moving focus onto a column fires drag-over there and drag-leave on the
// previously hovered column, and the drop key applies the move the
// target describes. Drag-end always fires, drop or no drop.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pboard/internal/config"
	"pboard/internal/dnd"
	"pboard/internal/model"
	"pboard/internal/store"
)

// Model is the Bubble Tea model for the board.
type Model struct {
	store *store.Store
	cfg   *config.Config

	columns []*column
	focus   int

	// gesture is the drag in flight, nil when idle.
	gesture *dnd.Gesture

	// form is the new-project modal, nil when closed.
	form *form

	keys keyMap
	help help.Model

	width  int
	height int
}

// New builds the board model and subscribes both columns to the store.
// Each column subscribes exactly once; the store is shared by reference
// and must be the process's only instance.
func New(s *store.Store, cfg *config.Config) Model {
	cols := []*column{
		newColumn(model.StatusActive, "Active"),
		newColumn(model.StatusFinished, "Finished"),
	}
	for _, c := range cols {
		s.AddListener(c.observe)
	}

	// Prime columns with whatever the store already holds (seed scripts
	// run before the program starts).
	snap := s.Snapshot()
	for _, c := range cols {
		c.observe(snap)
	}

	return Model{
		store:   s,
		cfg:     cfg,
		columns: cols,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Run starts the board program on the terminal.
func Run(s *store.Store, cfg *config.Config) error {
	p := tea.NewProgram(New(s, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("board exited: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

// updateForm routes keys to the modal while it is open.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.form = nil
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	in, submitted, cmd := m.form.update(msg)
	if submitted {
		// Validation passed; the store does not re-validate.
		m.store.AddProject(in.Title, in.Description, in.Effort)
		m.form = nil
	}
	return m, cmd
}

// updateBoard handles keys in normal board mode.
func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.New):
		m.form = newForm()
		m.layout()
		return m, nil

	case key.Matches(msg, keys.Left):
		m.setFocus(m.focus - 1)
		return m, nil

	case key.Matches(msg, keys.Right):
		m.setFocus(m.focus + 1)
		return m, nil

	case key.Matches(msg, keys.Up):
		m.columns[m.focus].moveCursor(-1)
		return m, nil

	case key.Matches(msg, keys.Down):
		m.columns[m.focus].moveCursor(1)
		return m, nil

	case key.Matches(msg, keys.Grab):
		m.grab()
		return m, nil

	case key.Matches(msg, keys.Drop):
		m.drop()
		return m, nil

	case key.Matches(msg, keys.Cancel):
		m.cancelDrag()
		return m, nil
	}

	return m, nil
}

// grab begins a drag gesture on the selected item. The source column is
// hovered immediately, the way a pointer drag starts over its own
// column.
func (m *Model) grab() {
	if m.gesture != nil {
		return
	}
	rec, ok := m.columns[m.focus].selected()
	if !ok {
		return
	}

	m.gesture = dnd.Begin(rec.ID)
	m.columns[m.focus].target.DragOver(m.gesture.Payload())
	for _, c := range m.columns {
		c.dragID = rec.ID
	}
}

// setFocus moves column focus. While a gesture is in flight this is the
// drag crossing a column boundary: leave the old target, enter the new.
func (m *Model) setFocus(i int) {
	if i < 0 || i >= len(m.columns) || i == m.focus {
		return
	}

	if m.gesture != nil {
		m.columns[m.focus].target.DragLeave()
		m.columns[i].target.DragOver(m.gesture.Payload())
	}
	m.columns[m.focus].focused = false
	m.focus = i
}

// drop completes the gesture on the focused column. The target describes
// the move; the store applies it (and absorbs redundant drops). The
// droppable marker is deliberately not cleared here.
func (m *Model) drop() {
	if m.gesture == nil {
		return
	}

	if mv, ok := m.columns[m.focus].target.Drop(m.gesture.Payload()); ok {
		m.store.MoveProject(mv.ID, mv.To)
	}
	m.finishDrag()
}

// cancelDrag abandons the gesture without a drop.
func (m *Model) cancelDrag() {
	if m.gesture == nil {
		return
	}
	m.finishDrag()
}

// finishDrag fires drag-end, which is observational and fires regardless
// of whether a drop happened.
func (m *Model) finishDrag() {
	m.gesture.End()
	m.gesture = nil
	for _, c := range m.columns {
		c.dragID = ""
	}
}

// layout distributes the window between the components.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	colWidth := (m.width - 2) / len(m.columns)
	colHeight := m.height - 4
	for _, c := range m.columns {
		c.resize(colWidth, colHeight)
	}
	if m.form != nil {
		m.form.resize(m.width, m.height)
	}
}

func (m Model) View() string {
	header := headerStyle.Render(m.cfg.BoardTitle)

	if m.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", m.form.view())
	}

	for i, c := range m.columns {
		c.focused = i == m.focus
	}
	var cols []string
	for _, c := range m.columns {
		cols = append(cols, c.view())
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	status := ""
	if m.gesture != nil {
		status = statusLineStyle.Render(
			fmt.Sprintf("moving %s (enter to drop, esc to cancel)", m.gesture.Payload().Data))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		board,
		status,
		m.help.View(m.keys),
	)
}
