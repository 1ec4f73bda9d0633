package session

import (
	"treedrag.dev/treedrag/internal/intent"
)

// Style is the visual hint for a row derived from the drag state
type Style int

const (
	// Neutral rows are not involved in the drag
	Neutral Style = iota
	// Active is the row being dragged
	Active
	// TargetAbove is hovered with the pointer in its top edge zone
	TargetAbove
	// TargetOver is hovered with the pointer in its middle
	TargetOver
	// TargetBelow is hovered with the pointer in its bottom edge zone
	TargetBelow
)

func (s Style) String() string {
	switch s {
	case Active:
		return "active"
	case TargetAbove:
		return "above"
	case TargetOver:
		return "over"
	case TargetBelow:
		return "below"
	default:
		return "neutral"
	}
}

// StyleOf projects a drag state onto a row. The dragged row is always
// Active, even when it is also the hovered row.
func StyleOf(state DragState, rowID string) Style {
	if rowID == "" {
		return Neutral
	}
	if state.ActiveID == rowID {
		return Active
	}
	if state.TargetID != rowID {
		return Neutral
	}
	switch state.Intent {
	case intent.Above:
		return TargetAbove
	case intent.Over:
		return TargetOver
	case intent.Below:
		return TargetBelow
	default:
		return Neutral
	}
}

// StyleFor returns the style hint of a row for the current drag state
func (s *Session[T]) StyleFor(rowID string) Style {
	return StyleOf(s.state, rowID)
}
