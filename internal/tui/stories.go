package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"treedrag.dev/treedrag/internal/config"
	"treedrag.dev/treedrag/internal/document"
	"treedrag.dev/treedrag/internal/engine"
	"treedrag.dev/treedrag/internal/intent"
	"treedrag.dev/treedrag/internal/session"
	"treedrag.dev/treedrag/internal/tui/components/tree"
)

// Story represents a specific state of a TUI component
type Story struct {
	Name        string
	Category    string
	Description string
	CreateModel func() tea.Model
}

// Stories is a registry of all component stories
var Stories = []Story{}

// RegisterStory registers a new component story
func RegisterStory(story Story) {
	Stories = append(Stories, story)
}

func init() {
	registerTreeStories()
	registerDragTableStories()
}

// RowLabel joins the given fields of a row for display
func RowLabel(columns []string) func(document.Row) string {
	return func(row document.Row) string {
		parts := make([]string, 0, len(columns))
		for _, column := range columns {
			if value := row.Get(column); value != "" {
				parts = append(parts, value)
			}
		}
		return strings.Join(parts, " · ")
	}
}

// storyForest is the demo data with Bob and Diana reporting to Alice
func storyForest() document.Forest {
	forest := document.Demo()
	forest = engine.ApplyMove(forest, "2", "1", intent.Over)
	return engine.ApplyMove(forest, "4", "1", intent.Over)
}

func registerTreeStories() {
	columns := config.Default().UI.Columns

	RegisterStory(Story{
		Name:        "Nested Rows",
		Category:    "Tree",
		Description: "The demo people with two reports nested under Alice",
		CreateModel: func() tea.Model {
			return tree.NewModel(tree.NewRenderer(storyForest(), RowLabel(columns)))
		},
	})

	for _, in := range intent.All {
		in := in
		RegisterStory(Story{
			Name:        "Hovering " + in.String(),
			Category:    "Tree",
			Description: "Eve dragged onto Charlie with intent " + in.String(),
			CreateModel: func() tea.Model {
				renderer := tree.NewRenderer(storyForest(), RowLabel(columns))
				renderer.AnnotateDrag(session.DragState{ActiveID: "5", TargetID: "3", Intent: in})
				return tree.NewModel(renderer)
			},
		})
	}
}

func registerDragTableStories() {
	RegisterStory(Story{
		Name:        "Idle",
		Category:    "Drag Table",
		Description: "The demo people before any drag; drag rows with the mouse",
		CreateModel: func() tea.Model {
			return NewDragTable(document.Demo(), config.Default().UI, nil)
		},
	})

	// Pointer offsets within a three-line row that select each intent
	offsets := map[intent.Intent]float64{intent.Above: 0.5, intent.Over: 1.5, intent.Below: 2.5}
	for _, in := range intent.All {
		in := in
		RegisterStory(Story{
			Name:        "Dragging " + in.String(),
			Category:    "Drag Table",
			Description: "Eve held over Bob with intent " + in.String(),
			CreateModel: func() tea.Model {
				m := NewDragTable(document.Demo(), config.Default().UI, nil)
				rect := m.rowRect(1)
				m.Session().DragStart("5")
				m.Session().DragOver(rect.Top+offsets[in], "2", rect)
				return m
			},
		})
	}
}
