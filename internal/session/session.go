package session

import (
	"log/slog"

	"treedrag.dev/treedrag/internal/engine"
	"treedrag.dev/treedrag/internal/intent"
)

// Phase is the coarse state of a Session
type Phase int

const (
	// Idle means no drag is in progress
	Idle Phase = iota
	// Dragging means a row has been picked up
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// DragState is the transient data of a drag. Empty ids and intent.None mean unset.
type DragState struct {
	ActiveID string
	TargetID string
	Intent   intent.Intent
}

// Session is the interaction state machine for dragging rows of a Forest
type Session[T engine.Record] struct {
	forest engine.Forest[T]
	state  DragState
	phase  Phase
	gutter float64
	hooks  Hooks[T]
	within WithinFunc
	logger *slog.Logger
}

// New creates an idle Session over forest. Pass a zero Hooks to receive no
// notifications.
func New[T engine.Record](forest engine.Forest[T], hooks Hooks[T], opts ...Option) *Session[T] {
	cfg := settings{
		gutter: intent.DefaultGutter,
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Session[T]{
		forest: forest,
		gutter: cfg.gutter,
		hooks:  hooks,
		within: cfg.within,
		logger: cfg.logger,
	}
}

// State returns a copy of the current drag state
func (s *Session[T]) State() DragState {
	return s.state
}

// Phase returns whether a drag is in progress
func (s *Session[T]) Phase() Phase {
	return s.phase
}

// Forest returns the current tree
func (s *Session[T]) Forest() engine.Forest[T] {
	return s.forest
}

// SetForest replaces the tree, e.g. after the caller changed its data.
// A drag in progress keeps its ids; a drop onto ids that disappeared is a no-op.
func (s *Session[T]) SetForest(forest engine.Forest[T]) {
	s.forest = forest
}

// Gutter returns the edge-zone size used for classification
func (s *Session[T]) Gutter() float64 {
	return s.gutter
}

// DragStart picks up the row with the given id. A drag already in progress
// is ended first, as if DragEnd had been called.
func (s *Session[T]) DragStart(id string) {
	if s.phase == Dragging {
		s.logger.Debug("drag restarted", "previous", s.state.ActiveID, "next", id)
		s.DragEnd()
	}

	s.phase = Dragging
	s.state = DragState{ActiveID: id}
	s.logger.Debug("drag start", "id", id)

	record, ok := s.forest.Find(id)
	if !ok {
		s.logger.Debug("drag start on unknown row", "id", id)
		return
	}
	if s.hooks.OnDragStart != nil {
		s.hooks.OnDragStart(id, record)
	}
}

// DragOver reports the pointer at pointerY over the row rowID occupying rect.
// It returns the classified intent, or intent.None while idle.
func (s *Session[T]) DragOver(pointerY float64, rowID string, rect intent.Rect) intent.Intent {
	if s.phase != Dragging {
		return intent.None
	}

	in := intent.ClassifyRect(pointerY, rect, s.gutter)
	if s.state.TargetID == rowID && s.state.Intent == in {
		return in
	}

	s.state.TargetID = rowID
	s.state.Intent = in
	s.logger.Debug("drag over", "source", s.state.ActiveID, "target", rowID, "intent", in)

	if s.hooks.OnDragOver != nil {
		s.hooks.OnDragOver(s.state.ActiveID, rowID, in)
	}
	return in
}

// DragLeave reports the pointer leaving the row rowID for the UI element
// related ("" when it left for nothing). A leave into an element inside the
// same row is ignored. It reports whether the hover state was cleared.
func (s *Session[T]) DragLeave(rowID, related string) bool {
	if s.phase != Dragging {
		return false
	}
	if related != "" && s.within != nil && s.within(related, rowID) {
		return false
	}

	s.state.TargetID = ""
	s.state.Intent = intent.None
	s.logger.Debug("drag leave", "row", rowID)
	return true
}

// Drop releases the dragged row onto rowID. When a drag with a classified
// intent is in progress the move is applied, the session adopts the new
// tree, and OnDataChange then OnDrop fire. The session is idle afterwards in
// every case. It returns the current tree and whether a move was attempted.
func (s *Session[T]) Drop(rowID string) (engine.Forest[T], bool) {
	state := s.state
	dragging := s.phase == Dragging
	s.reset()

	if !dragging || state.ActiveID == "" || !state.Intent.Valid() {
		s.logger.Debug("drop without intent", "row", rowID)
		return s.forest, false
	}

	s.forest = engine.ApplyMove(s.forest, state.ActiveID, rowID, state.Intent)
	s.logger.Debug("drop", "source", state.ActiveID, "target", rowID, "intent", state.Intent)

	if s.hooks.OnDataChange != nil {
		s.hooks.OnDataChange(s.forest)
	}
	if s.hooks.OnDrop != nil {
		s.hooks.OnDrop(state.ActiveID, rowID, state.Intent, s.forest)
	}
	return s.forest, true
}

// DragEnd cancels or finishes the gesture and always notifies OnDragEnd
func (s *Session[T]) DragEnd() {
	s.reset()
	s.logger.Debug("drag end")
	if s.hooks.OnDragEnd != nil {
		s.hooks.OnDragEnd()
	}
}

func (s *Session[T]) reset() {
	s.phase = Idle
	s.state = DragState{}
}
