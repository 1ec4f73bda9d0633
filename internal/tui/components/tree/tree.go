// Package tree provides a renderer for row tree visualizations.
package tree

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"treedrag.dev/treedrag/internal/engine"
	"treedrag.dev/treedrag/internal/session"
	"treedrag.dev/treedrag/internal/tui/style"
)

const (
	// ActiveRowSymbol is the symbol used for the row being dragged
	ActiveRowSymbol = "◉"
	// RowSymbol is the symbol used for every other row
	RowSymbol = "◯"

	barWidth = 12
	ellipsis = "…"
)

// Annotation holds per-row display metadata
type Annotation struct {
	Style session.Style
	Note  string // Additional text to display after the row label
}

// RenderOptions configures rendering behavior
type RenderOptions struct {
	Short bool // ids only
	Width int  // truncate lines to this many cells when positive
}

// Renderer renders a forest as an indented tree with drag annotations
type Renderer[T engine.Record] struct {
	forest      engine.Forest[T]
	label       func(T) string
	Annotations map[string]Annotation
}

// NewRenderer creates a renderer. label returns the text shown after a
// row's id and may be nil.
func NewRenderer[T engine.Record](forest engine.Forest[T], label func(T) string) *Renderer[T] {
	return &Renderer[T]{
		forest:      forest,
		label:       label,
		Annotations: make(map[string]Annotation),
	}
}

// SetForest replaces the rendered tree
func (r *Renderer[T]) SetForest(forest engine.Forest[T]) {
	r.forest = forest
}

// SetAnnotation sets the annotation for a row
func (r *Renderer[T]) SetAnnotation(id string, annotation Annotation) {
	r.Annotations[id] = annotation
}

// SetAnnotations sets annotations for multiple rows
func (r *Renderer[T]) SetAnnotations(annotations map[string]Annotation) {
	r.Annotations = annotations
}

// AnnotateDrag sets each row's style from a drag state
func (r *Renderer[T]) AnnotateDrag(state session.DragState) {
	annotations := make(map[string]Annotation)
	r.forest.Walk(func(node engine.Node[T], _ int) bool {
		if s := session.StyleOf(state, node.ID()); s != session.Neutral {
			annotation := r.Annotations[node.ID()]
			annotation.Style = s
			annotations[node.ID()] = annotation
		}
		return true
	})
	for id, annotation := range r.Annotations {
		if _, ok := annotations[id]; !ok && annotation.Note != "" {
			annotation.Style = session.Neutral
			annotations[id] = annotation
		}
	}
	r.Annotations = annotations
}

// Render returns one line per row, plus a bar line beside rows that are
// edge drop targets
func (r *Renderer[T]) Render(opts RenderOptions) []string {
	var lines []string
	r.renderNodes(&lines, r.forest, "", 0, opts)

	if opts.Width > 0 {
		for i, line := range lines {
			lines[i] = truncate.StringWithTail(line, uint(opts.Width), ellipsis)
		}
	}
	return lines
}

func (r *Renderer[T]) renderNodes(lines *[]string, nodes []engine.Node[T], prefix string, depth int, opts RenderOptions) {
	for i, node := range nodes {
		connector, childPrefix := "", prefix
		if depth > 0 {
			if i == len(nodes)-1 {
				connector, childPrefix = "└─", prefix+"  "
			} else {
				connector, childPrefix = "├─", prefix+"│ "
			}
		}

		annotation := r.Annotations[node.ID()]
		if annotation.Style == session.TargetAbove {
			*lines = append(*lines, r.barLine(prefix, depth, style.DropBar))
		}
		*lines = append(*lines, r.rowLine(node, prefix+connector, depth, annotation, opts))

		r.renderNodes(lines, node.Children, childPrefix, depth+1, opts)

		// A row dropped below lands after this row's whole subtree
		if annotation.Style == session.TargetBelow {
			*lines = append(*lines, r.barLine(prefix, depth, style.DropBarBelow))
		}
	}
}

func (r *Renderer[T]) rowLine(node engine.Node[T], guides string, depth int, annotation Annotation, opts RenderOptions) string {
	symbol := RowSymbol
	if annotation.Style == session.Active {
		symbol = ActiveRowSymbol
	}

	text := symbol + " " + node.ID()
	if !opts.Short && r.label != nil {
		if label := r.label(node.Record); label != "" {
			text += " " + label
		}
	}

	line := style.ColorDepth(guides, depth-1) + style.RowStyle(annotation.Style).Render(text)

	var notes []string
	if marker := style.Marker(annotation.Style); marker != "" {
		notes = append(notes, marker)
	}
	if annotation.Note != "" {
		notes = append(notes, annotation.Note)
	}
	if len(notes) > 0 {
		line += " " + style.ColorDim("("+strings.Join(notes, ", ")+")")
	}
	return line
}

func (r *Renderer[T]) barLine(prefix string, depth int, bar string) string {
	indent := prefix
	if depth > 0 {
		indent += "  "
	}
	return style.ColorDepth(indent, depth-1) + style.BarStyle().Render(strings.Repeat(bar, barWidth))
}
