package tree

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"treedrag.dev/treedrag/internal/engine"
)

// Model wraps Renderer to make it a tea.Model for the storyboard
type Model[T engine.Record] struct {
	Renderer *Renderer[T]
	Options  RenderOptions
	Width    int
	Height   int
}

// NewModel creates a new Model with the given renderer.
func NewModel[T engine.Record](renderer *Renderer[T]) *Model[T] {
	return &Model[T]{Renderer: renderer}
}

// Init initializes the model.
func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update updates the model based on the message.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			m.Options.Short = !m.Options.Short
			return m, nil
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Options.Width = msg.Width
	}
	return m, nil
}

// View returns the string representation of the model.
func (m Model[T]) View() string {
	content := strings.Join(m.Renderer.Render(m.Options), "\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	help := helpStyle.Render("s: toggle short | q: back")

	return content + "\n" + help
}
