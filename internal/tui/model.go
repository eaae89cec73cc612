// Package tui implements the interactive terminal cube.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nxcube/nxcube"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for interactive cube manipulation: type
// notation tokens, press enter to apply them, ctrl+z to undo.
type Model struct {
	cube    *nxcube.Cube
	size    int
	input   string
	status  string
	history []string
	quit    bool
}

// New creates a model around a solved cube of the given size.
func New(size int) (Model, error) {
	cube, err := nxcube.New(size)
	if err != nil {
		return Model{}, err
	}
	return Model{cube: cube, size: size}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quit = true
		return m, tea.Quit

	case "enter":
		return m.applyInput(), nil

	case "backspace":
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	case "ctrl+z":
		return m.undo(), nil

	case "ctrl+r":
		cube, err := nxcube.New(m.size)
		if err == nil {
			m.cube = cube
			m.history = nil
			m.status = "reset to solved"
		}
		return m, nil

	default:
		if s := key.String(); len(s) == 1 || s == " " {
			m.input += s
		}
		return m, nil
	}
}

func (m Model) applyInput() Model {
	sequence := strings.TrimSpace(m.input)
	m.input = ""
	if sequence == "" {
		return m
	}
	if err := m.cube.Apply(sequence); err != nil {
		m.status = err.Error()
		return m
	}
	m.history = append(m.history, strings.Fields(sequence)...)
	m.status = ""
	return m
}

// undo rebuilds the cube and replays everything but the last move. Cheap
// enough: a replay is O(moves * size^3).
func (m Model) undo() Model {
	if len(m.history) == 0 {
		m.status = "nothing to undo"
		return m
	}
	cube, err := nxcube.New(m.size)
	if err != nil {
		m.status = err.Error()
		return m
	}
	m.history = m.history[:len(m.history)-1]
	for _, token := range m.history {
		if err := cube.Rotate(token); err != nil {
			m.status = err.Error()
			return m
		}
	}
	m.cube = cube
	m.status = "undone"
	return m
}

// View renders the cube, the input line and the status line.
func (m Model) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("nxcube %dx%dx%d", m.size, m.size, m.size)))
	if m.cube.IsSolved() {
		b.WriteString("  " + titleStyle.Render("solved"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.cube.Render())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "moves applied: %d\n", len(m.history))
	fmt.Fprintf(&b, "> %s_\n", m.input)
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("enter: apply  ctrl+z: undo  ctrl+r: reset  esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive program.
func Run(size int) error {
	m, err := New(size)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
