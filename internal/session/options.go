package session

import (
	"io"
	"log/slog"

	"treedrag.dev/treedrag/internal/engine"
	"treedrag.dev/treedrag/internal/intent"
)

// Hooks are the lifecycle notifications of a drag. All are optional.
type Hooks[T engine.Record] struct {
	// OnDragStart fires when a drag begins on a row that exists in the tree
	OnDragStart func(id string, record T)
	// OnDragOver fires when the hovered row or the intent changes
	OnDragOver func(sourceID, targetID string, in intent.Intent)
	// OnDataChange receives the tree produced by a drop
	OnDataChange func(forest engine.Forest[T])
	// OnDrop fires after OnDataChange with the details of the move
	OnDrop func(sourceID, targetID string, in intent.Intent, forest engine.Forest[T])
	// OnDragEnd fires whenever a gesture is cleaned up
	OnDragEnd func()
}

// WithinFunc reports whether the UI element candidate lies inside container.
// It lets a drag-leave that only crossed into a row's own sub-element be ignored.
type WithinFunc func(candidate, container string) bool

// Option configures a Session
type Option func(*settings)

type settings struct {
	gutter float64
	within WithinFunc
	logger *slog.Logger
}

// WithGutter sets the minimum edge-zone size used to classify intents
func WithGutter(gutter float64) Option {
	return func(s *settings) {
		s.gutter = gutter
	}
}

// WithWithin sets the containment predicate used by DragLeave
func WithWithin(within WithinFunc) Option {
	return func(s *settings) {
		s.within = within
	}
}

// WithLogger sets the logger that receives a debug record per transition
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
