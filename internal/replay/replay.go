package replay

import (
	"fmt"
	"log/slog"
	"strings"

	"treedrag.dev/treedrag/internal/engine"
	"treedrag.dev/treedrag/internal/intent"
	"treedrag.dev/treedrag/internal/session"
)

// Result is the outcome of a replay
type Result[T engine.Record] struct {
	// Forest is the tree after the last event
	Forest engine.Forest[T]
	// Transcript lists every notification in the order it fired
	Transcript []string
	// Moves counts drops that applied a move
	Moves int
}

// Within treats "row/part" as an element inside row "row"
func Within(candidate, container string) bool {
	return strings.HasPrefix(candidate, container+"/")
}

// Run feeds events to a fresh session over forest. Events are checked before
// any is dispatched.
func Run[T engine.Record](forest engine.Forest[T], events []Event, gutter float64, logger *slog.Logger) (Result[T], error) {
	for i, event := range events {
		if err := event.Validate(); err != nil {
			return Result[T]{}, fmt.Errorf("event %d: %w", i+1, err)
		}
	}

	var result Result[T]
	record := func(format string, args ...any) {
		result.Transcript = append(result.Transcript, fmt.Sprintf(format, args...))
	}

	hooks := session.Hooks[T]{
		OnDragStart: func(id string, _ T) {
			record("drag start %s", id)
		},
		OnDragOver: func(sourceID, targetID string, in intent.Intent) {
			record("drag over %s -> %s (%s)", sourceID, targetID, in)
		},
		OnDataChange: func(forest engine.Forest[T]) {
			record("data change (%d rows)", forest.Count())
		},
		OnDrop: func(sourceID, targetID string, in intent.Intent, _ engine.Forest[T]) {
			record("drop %s %s %s", sourceID, in, targetID)
		},
		OnDragEnd: func() {
			record("drag end")
		},
	}

	s := session.New(forest, hooks,
		session.WithGutter(gutter),
		session.WithWithin(Within),
		session.WithLogger(logger),
	)
	for _, event := range events {
		switch event.Type {
		case DragStart:
			s.DragStart(event.Row)
		case DragOver:
			s.DragOver(event.Y, event.Row, intent.Rect{Top: event.Top, Height: event.Height})
		case DragLeave:
			s.DragLeave(event.Row, event.Related)
		case Drop:
			if _, moved := s.Drop(event.Row); moved {
				result.Moves++
			}
		case DragEnd:
			s.DragEnd()
		}
	}

	result.Forest = s.Forest()
	return result, nil
}
