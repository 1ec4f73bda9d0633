package tree

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"treedrag.dev/treedrag/internal/intent"
	"treedrag.dev/treedrag/internal/session"
	"treedrag.dev/treedrag/testhelpers"
)

func init() {
	// Force color output for all tests in this file to ensure ANSI escape codes are generated
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func personLabel(p testhelpers.Person) string {
	return p.Name
}

func plain(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ansi.Strip(line)
	}
	return out
}

func TestRenderer_Render(t *testing.T) {
	t.Run("draws nested rows with guides", func(t *testing.T) {
		renderer := NewRenderer(testhelpers.NestedPeople(), personLabel)

		lines := renderer.Render(RenderOptions{})
		require.Equal(t, []string{
			"◯ 1 Alice",
			"├─◯ 2 Bob",
			"│ └─◯ 3 Charlie",
			"└─◯ 4 Diana",
			"◯ 5 Eve",
			"└─◯ 6 Frank",
		}, plain(lines))
		require.Contains(t, lines[1], "\x1b[", "guides should be colored")
	})

	t.Run("short mode shows ids only", func(t *testing.T) {
		renderer := NewRenderer(testhelpers.ThreePeople(), personLabel)
		require.Equal(t, []string{"◯ 1", "◯ 2", "◯ 3"}, plain(renderer.Render(RenderOptions{Short: true})))
	})

	t.Run("works without a label function", func(t *testing.T) {
		renderer := NewRenderer(testhelpers.ThreePeople(), nil)
		require.Equal(t, "◯ 1", plain(renderer.Render(RenderOptions{}))[0])
	})

	t.Run("truncates to the width", func(t *testing.T) {
		renderer := NewRenderer(testhelpers.NestedPeople(), personLabel)
		lines := plain(renderer.Render(RenderOptions{Width: 8}))
		require.Equal(t, "│ └─◯ 3…", lines[2])
		require.Equal(t, "◯ 5 Eve", lines[4])
	})

	t.Run("renders an empty forest as no lines", func(t *testing.T) {
		renderer := NewRenderer(testhelpers.ThreePeople()[:0], personLabel)
		require.Empty(t, renderer.Render(RenderOptions{}))
	})
}

func TestRenderer_AnnotateDrag(t *testing.T) {
	t.Run("marks the dragged row and a bar above the target", func(t *testing.T) {
		renderer := NewRenderer(testhelpers.ThreePeople(), personLabel)
		renderer.AnnotateDrag(session.DragState{ActiveID: "3", TargetID: "1", Intent: intent.Above})

		require.Equal(t, []string{
			"▔▔▔▔▔▔▔▔▔▔▔▔",
			"◯ 1 Alice (drop above)",
			"◯ 2 Bob",
			"◉ 3 Charlie (grabbing)",
		}, plain(renderer.Render(RenderOptions{})))
	})

	t.Run("places the below bar after the target subtree", func(t *testing.T) {
		renderer := NewRenderer(testhelpers.NestedPeople(), personLabel)
		renderer.AnnotateDrag(session.DragState{ActiveID: "6", TargetID: "2", Intent: intent.Below})

		require.Equal(t, []string{
			"◯ 1 Alice",
			"├─◯ 2 Bob (drop below)",
			"│ └─◯ 3 Charlie",
			"  ▁▁▁▁▁▁▁▁▁▁▁▁",
			"└─◯ 4 Diana",
			"◯ 5 Eve",
			"└─◉ 6 Frank (grabbing)",
		}, plain(renderer.Render(RenderOptions{})))
	})

	t.Run("highlights a nest target", func(t *testing.T) {
		renderer := NewRenderer(testhelpers.ThreePeople(), personLabel)
		renderer.AnnotateDrag(session.DragState{ActiveID: "1", TargetID: "2", Intent: intent.Over})

		lines := renderer.Render(RenderOptions{})
		require.Equal(t, "◯ 2 Bob (nest inside)", ansi.Strip(lines[1]))
		require.NotEqual(t, ansi.Strip(lines[1]), lines[1])
	})

	t.Run("keeps notes and clears stale styles", func(t *testing.T) {
		renderer := NewRenderer(testhelpers.ThreePeople(), personLabel)
		renderer.SetAnnotation("2", Annotation{Note: "new", Style: session.TargetOver})
		renderer.AnnotateDrag(session.DragState{})

		require.Equal(t, "◯ 2 Bob (new)", plain(renderer.Render(RenderOptions{}))[1])
		require.Equal(t, session.Neutral, renderer.Annotations["2"].Style)
	})
}

func TestModel(t *testing.T) {
	renderer := NewRenderer(testhelpers.ThreePeople(), personLabel)
	model := NewModel(renderer)

	view := ansi.Strip(model.View())
	require.True(t, strings.HasPrefix(view, "◯ 1 Alice\n◯ 2 Bob\n◯ 3 Charlie\n"))
	require.Contains(t, view, "s: toggle short")
}
