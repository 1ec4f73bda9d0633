package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"treedrag.dev/treedrag/internal/config"
	"treedrag.dev/treedrag/internal/document"
	"treedrag.dev/treedrag/internal/engine"
	"treedrag.dev/treedrag/internal/intent"
	"treedrag.dev/treedrag/internal/session"
	"treedrag.dev/treedrag/internal/tui/style"
)

const (
	// tableHeaderLines is the number of lines drawn above the first row
	tableHeaderLines = 2
	idColumnWidth    = 14
	minColumnWidth   = 8
)

type dragTableKeyMap struct {
	Save   key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func (k dragTableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel, k.Quit}
}

func (k dragTableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Save, k.Cancel, k.Quit}}
}

var defaultDragTableKeys = dragTableKeyMap{
	Save: key.NewBinding(
		key.WithKeys("enter", "w"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}

type dragTableStyles struct {
	title  lipgloss.Style
	header lipgloss.Style
	handle lipgloss.Style
	status lipgloss.Style
}

func newDragTableStyles() dragTableStyles {
	return dragTableStyles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		handle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}

// DragTable is a bubbletea model showing rows as a table whose rows can be
// dragged with the mouse. A row occupies RowHeight terminal lines; where the
// pointer sits within those lines decides whether a drop lands above, over
// or below it.
type DragTable struct {
	session   *session.Session[document.Row]
	rows      []engine.FlatNode[document.Row]
	columns   []string
	rowHeight int
	width     int
	hoverID   string
	status    string
	saved     bool
	quitting  bool
	keys      dragTableKeyMap
	help      help.Model
	styles    dragTableStyles
}

// NewDragTable creates a drag table over forest
func NewDragTable(forest document.Forest, ui config.UI, logger *slog.Logger) *DragTable {
	rowHeight := ui.RowHeight
	if rowHeight < 1 {
		rowHeight = 1
	}
	m := &DragTable{
		columns:   ui.Columns,
		rowHeight: rowHeight,
		width:     defaultWidth,
		keys:      defaultDragTableKeys,
		help:      help.New(),
		styles:    newDragTableStyles(),
	}

	hooks := session.Hooks[document.Row]{
		OnDragStart: func(id string, _ document.Row) {
			m.status = "dragging " + id
		},
		OnDragOver: func(sourceID, targetID string, in intent.Intent) {
			m.status = fmt.Sprintf("%s → %s %s", sourceID, in, targetID)
		},
		OnDataChange: func(forest document.Forest) {
			m.rows = forest.Flatten()
		},
		OnDrop: func(sourceID, targetID string, in intent.Intent, _ document.Forest) {
			m.status = fmt.Sprintf("moved %s %s %s", sourceID, in, targetID)
		},
	}
	m.session = session.New(forest, hooks,
		session.WithGutter(ui.Gutter),
		session.WithLogger(logger),
	)
	m.rows = forest.Flatten()
	return m
}

// Forest returns the current tree
func (m *DragTable) Forest() document.Forest {
	return m.session.Forest()
}

// Saved reports whether the table was closed with the save key
func (m *DragTable) Saved() bool {
	return m.saved
}

// Session exposes the drag session, for stories and tests that drive it directly
func (m *DragTable) Session() *session.Session[document.Row] {
	return m.session
}

// Init initializes the bubbletea model
func (m *DragTable) Init() tea.Cmd {
	return nil
}

// Update handles message updates for the bubbletea model
func (m *DragTable) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Save):
			m.saved = true
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			if m.session.Phase() == session.Dragging {
				m.session.DragEnd()
				m.hoverID = ""
				m.status = "drag cancelled"
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *DragTable) handleMouse(msg tea.MouseMsg) {
	index, onRow := m.rowAt(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && onRow {
			m.session.DragStart(m.rows[index].Record.ID())
			m.hoverID = ""
		}
	case tea.MouseActionMotion:
		if m.session.Phase() != session.Dragging {
			return
		}
		if !onRow {
			if m.hoverID != "" {
				m.session.DragLeave(m.hoverID, "")
				m.hoverID = ""
			}
			return
		}
		rowID := m.rows[index].Record.ID()
		if m.hoverID != "" && m.hoverID != rowID {
			m.session.DragLeave(m.hoverID, rowID)
		}
		m.hoverID = rowID
		// The pointer is at the centre of its terminal cell
		m.session.DragOver(float64(msg.Y)+0.5, rowID, m.rowRect(index))
	case tea.MouseActionRelease:
		if m.session.Phase() != session.Dragging {
			return
		}
		if onRow {
			m.session.Drop(m.rows[index].Record.ID())
		}
		m.session.DragEnd()
		m.hoverID = ""
	}
}

// rowAt maps a screen line to a row index
func (m *DragTable) rowAt(y int) (int, bool) {
	offset := y - tableHeaderLines
	if offset < 0 {
		return 0, false
	}
	index := offset / m.rowHeight
	if index >= len(m.rows) {
		return 0, false
	}
	return index, true
}

func (m *DragTable) rowRect(index int) intent.Rect {
	return intent.Rect{
		Top:    float64(tableHeaderLines + index*m.rowHeight),
		Height: float64(m.rowHeight),
	}
}

func (m *DragTable) columnWidth() int {
	if len(m.columns) == 0 {
		return 0
	}
	width := (m.width - idColumnWidth - 4) / len(m.columns)
	if width < minColumnWidth {
		width = minColumnWidth
	}
	return width
}

func cell(text string, width int) string {
	text = truncate.StringWithTail(text, uint(width-1), "…")
	return lipgloss.NewStyle().Width(width).Render(text)
}

// View renders the TUI
func (m *DragTable) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Drag rows with the mouse: top edge inserts above, middle nests, bottom edge inserts below"))
	b.WriteString("\n")

	colWidth := m.columnWidth()
	header := "  " + cell("ID", idColumnWidth)
	for _, column := range m.columns {
		header += cell(strings.ToUpper(column), colWidth)
	}
	b.WriteString(m.styles.header.Render(header))
	b.WriteString("\n")

	for _, row := range m.rows {
		for _, line := range m.renderRow(row, colWidth) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderRow returns exactly rowHeight lines for a row
func (m *DragTable) renderRow(row engine.FlatNode[document.Row], colWidth int) []string {
	hint := m.session.StyleFor(row.Record.ID())

	content := m.styles.handle.Render(style.GrabHandle) + " "
	text := cell(strings.Repeat("  ", row.Depth)+row.Record.ID(), idColumnWidth)
	for _, column := range m.columns {
		text += cell(row.Record.Get(column), colWidth)
	}
	content += style.RowStyle(hint).Render(text)
	if hint == session.TargetOver {
		content = style.OutlineStyle().Render(content)
	}

	lines := make([]string, m.rowHeight)
	middle := m.rowHeight / 2
	lines[middle] = content

	barWidth := idColumnWidth + len(m.columns)*colWidth + 2
	if m.rowHeight > 1 {
		switch hint {
		case session.TargetAbove:
			lines[0] = style.BarStyle().Render(strings.Repeat(style.DropBar, barWidth))
		case session.TargetBelow:
			lines[m.rowHeight-1] = style.BarStyle().Render(strings.Repeat(style.DropBarBelow, barWidth))
		}
	} else if marker := style.Marker(hint); marker != "" {
		lines[middle] += " " + style.ColorDim("("+marker+")")
	}
	return lines
}

// RunDragTable opens the drag table full screen and returns the resulting
// tree and whether the user saved it
func RunDragTable(forest document.Forest, ui config.UI, logger *slog.Logger) (document.Forest, bool, error) {
	m := NewDragTable(forest, ui, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return forest, false, err
	}
	table, ok := final.(*DragTable)
	if !ok {
		return forest, false, fmt.Errorf("unexpected model type")
	}
	return table.Forest(), table.Saved(), nil
}
