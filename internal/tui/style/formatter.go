// Package style maps drag style hints and tree depth to terminal colors.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"treedrag.dev/treedrag/internal/session"
)

// DepthColors is the palette used for tree guides, one color per depth
var DepthColors = [][]int{
	{76, 203, 241},  // Light blue
	{77, 202, 125},  // Green
	{245, 200, 0},   // Yellow
	{248, 144, 72},  // Orange
	{235, 130, 188}, // Pink
	{159, 131, 228}, // Purple
}

const (
	// DropBar marks the edge a row will be inserted at
	DropBar = "▔"
	// DropBarBelow marks the bottom edge
	DropBarBelow = "▁"
	// GrabHandle precedes rows that can be picked up
	GrabHandle = "⠿"
)

// DepthColor returns the guide color for a nesting depth
func DepthColor(depth int) lipgloss.Color {
	if depth < 0 {
		depth = 0
	}
	c := DepthColors[depth%len(DepthColors)]
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}

// ColorDepth colors text with the palette entry for depth
func ColorDepth(text string, depth int) string {
	if text == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(DepthColor(depth)).Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// ColorIntent colors an intent name
func ColorIntent(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true).
		Render(text)
}

// RowStyle returns the style a row is drawn with for a drag style hint.
// The active row is dimmed, a nest target is highlighted, and the edge
// targets are drawn plain with a bar added by the caller.
func RowStyle(s session.Style) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch s {
	case session.Active:
		return base.Foreground(lipgloss.Color("240")).Faint(true)
	case session.TargetOver:
		return base.Background(lipgloss.Color("24")).Foreground(lipgloss.Color("231")).Bold(true)
	case session.TargetAbove, session.TargetBelow:
		return base.Foreground(lipgloss.Color("39"))
	default:
		return base
	}
}

// BarStyle is the style of the insertion bar drawn at a target edge
func BarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
}

// OutlineStyle frames a nest target
func OutlineStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true).
		BorderForeground(lipgloss.Color("205"))
}

// Marker returns a short text tag for a style hint, empty for neutral rows
func Marker(s session.Style) string {
	switch s {
	case session.Active:
		return "grabbing"
	case session.TargetAbove:
		return "drop above"
	case session.TargetOver:
		return "nest inside"
	case session.TargetBelow:
		return "drop below"
	default:
		return ""
	}
}
