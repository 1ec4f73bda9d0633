package session_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"treedrag.dev/treedrag/internal/engine"
	"treedrag.dev/treedrag/internal/intent"
	"treedrag.dev/treedrag/internal/session"
	"treedrag.dev/treedrag/testhelpers"
)

type Person = testhelpers.Person

// recorder captures hook invocations in order
type recorder struct {
	events []string
	forest engine.Forest[Person]
}

func (r *recorder) hooks() session.Hooks[Person] {
	return session.Hooks[Person]{
		OnDragStart: func(id string, record Person) {
			r.events = append(r.events, fmt.Sprintf("start %s %s", id, record.Name))
		},
		OnDragOver: func(sourceID, targetID string, in intent.Intent) {
			r.events = append(r.events, fmt.Sprintf("over %s %s %s", sourceID, targetID, in))
		},
		OnDataChange: func(forest engine.Forest[Person]) {
			r.forest = forest
			r.events = append(r.events, "change "+testhelpers.Outline(forest))
		},
		OnDrop: func(sourceID, targetID string, in intent.Intent, forest engine.Forest[Person]) {
			r.events = append(r.events, fmt.Sprintf("drop %s %s %s %s", sourceID, targetID, in, testhelpers.Outline(forest)))
		},
		OnDragEnd: func() {
			r.events = append(r.events, "end")
		},
	}
}

// rows are 30 units tall and stacked from zero; the default gutter gives
// edge zones of 10 units
func rowRect(index int) intent.Rect {
	return intent.Rect{Top: float64(index * 30), Height: 30}
}

func newSession(forest engine.Forest[Person], opts ...session.Option) (*session.Session[Person], *recorder) {
	rec := &recorder{}
	return session.New(forest, rec.hooks(), opts...), rec
}

func TestSession_DragStart(t *testing.T) {
	t.Run("notifies with the record", func(t *testing.T) {
		s, rec := newSession(testhelpers.NestedPeople())
		s.DragStart("3")

		require.Equal(t, session.Dragging, s.Phase())
		require.Equal(t, session.DragState{ActiveID: "3"}, s.State())
		require.Equal(t, []string{"start 3 Charlie"}, rec.events)
	})

	t.Run("unknown row still starts a drag without notifying", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		s.DragStart("missing")

		require.Equal(t, session.Dragging, s.Phase())
		require.Equal(t, "missing", s.State().ActiveID)
		require.Empty(t, rec.events)
	})

	t.Run("restarting ends the previous drag first", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		s.DragStart("1")
		s.DragOver(45, "2", rowRect(1))
		s.DragStart("3")

		require.Equal(t, session.DragState{ActiveID: "3"}, s.State())
		require.Equal(t, []string{"start 1 Alice", "over 1 2 over", "end", "start 3 Charlie"}, rec.events)
	})
}

func TestSession_DragOver(t *testing.T) {
	t.Run("ignored while idle", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		require.Equal(t, intent.None, s.DragOver(45, "2", rowRect(1)))
		require.Equal(t, session.DragState{}, s.State())
		require.Empty(t, rec.events)
	})

	t.Run("classifies against the row rect", func(t *testing.T) {
		s, _ := newSession(testhelpers.ThreePeople())
		s.DragStart("1")

		require.Equal(t, intent.Above, s.DragOver(32, "2", rowRect(1)))
		require.Equal(t, intent.Over, s.DragOver(45, "2", rowRect(1)))
		require.Equal(t, intent.Below, s.DragOver(59, "2", rowRect(1)))
		require.Equal(t, session.DragState{ActiveID: "1", TargetID: "2", Intent: intent.Below}, s.State())
	})

	t.Run("identical hover does not notify twice", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		s.DragStart("2")
		s.DragOver(45, "2", rowRect(1))
		s.DragOver(44, "2", rowRect(1))

		require.Equal(t, []string{"start 2 Bob", "over 2 2 over"}, rec.events)
	})

	t.Run("notifies on intent or target change", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		s.DragStart("1")
		s.DragOver(45, "2", rowRect(1))
		s.DragOver(58, "2", rowRect(1))
		s.DragOver(88, "3", rowRect(2))

		require.Equal(t, []string{
			"start 1 Alice",
			"over 1 2 over",
			"over 1 2 below",
			"over 1 3 below",
		}, rec.events)
	})

	t.Run("uses the configured gutter", func(t *testing.T) {
		rect := intent.Rect{Top: 0, Height: 12}

		wide, _ := newSession(testhelpers.ThreePeople())
		wide.DragStart("1")
		require.Equal(t, intent.Below, wide.DragOver(7, "2", rect))

		narrow, _ := newSession(testhelpers.ThreePeople(), session.WithGutter(0))
		narrow.DragStart("1")
		require.Equal(t, intent.Over, narrow.DragOver(7, "2", rect))
		require.Equal(t, 0.0, narrow.Gutter())
	})
}

func TestSession_DragLeave(t *testing.T) {
	within := func(candidate, container string) bool {
		return candidate == container+"/cell"
	}

	t.Run("clears the hover state", func(t *testing.T) {
		s, _ := newSession(testhelpers.ThreePeople(), session.WithWithin(within))
		s.DragStart("1")
		s.DragOver(45, "2", rowRect(1))

		require.True(t, s.DragLeave("2", ""))
		require.Equal(t, session.DragState{ActiveID: "1"}, s.State())
		require.Equal(t, session.Dragging, s.Phase())
	})

	t.Run("ignores leaving into the same row", func(t *testing.T) {
		s, _ := newSession(testhelpers.ThreePeople(), session.WithWithin(within))
		s.DragStart("1")
		s.DragOver(45, "2", rowRect(1))

		require.False(t, s.DragLeave("2", "2/cell"))
		require.Equal(t, session.DragState{ActiveID: "1", TargetID: "2", Intent: intent.Over}, s.State())

		require.True(t, s.DragLeave("2", "3/cell"))
		require.Equal(t, "", s.State().TargetID)
	})

	t.Run("without a predicate every leave clears", func(t *testing.T) {
		s, _ := newSession(testhelpers.ThreePeople())
		s.DragStart("1")
		s.DragOver(45, "2", rowRect(1))
		require.True(t, s.DragLeave("2", "2/cell"))
	})

	t.Run("ignored while idle", func(t *testing.T) {
		s, _ := newSession(testhelpers.ThreePeople())
		require.False(t, s.DragLeave("2", ""))
	})
}

func TestSession_Drop(t *testing.T) {
	t.Run("applies the move and notifies in order", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		s.DragStart("3")
		s.DragOver(1, "1", rowRect(0))

		forest, moved := s.Drop("1")
		require.True(t, moved)
		testhelpers.ExpectOutline(t, forest, "3 1 2")
		testhelpers.ExpectOutline(t, s.Forest(), "3 1 2")
		require.Equal(t, forest, rec.forest)

		require.Equal(t, []string{
			"start 3 Charlie",
			"over 3 1 above",
			"change 3 1 2",
			"drop 3 1 above 3 1 2",
		}, rec.events)
		require.Equal(t, session.Idle, s.Phase())
		require.Equal(t, session.DragState{}, s.State())
	})

	t.Run("nests on an over intent", func(t *testing.T) {
		s, _ := newSession(testhelpers.ThreePeople())
		s.DragStart("2")
		s.DragOver(15, "1", rowRect(0))

		forest, _ := s.Drop("1")
		testhelpers.ExpectOutline(t, forest, "1[2] 3")
	})

	t.Run("drop without an intent only resets", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		s.DragStart("2")

		forest, moved := s.Drop("1")
		require.False(t, moved)
		testhelpers.ExpectOutline(t, forest, "1 2 3")
		require.Equal(t, []string{"start 2 Bob"}, rec.events)
		require.Equal(t, session.Idle, s.Phase())
	})

	t.Run("drop while idle does nothing", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		_, moved := s.Drop("1")
		require.False(t, moved)
		require.Empty(t, rec.events)
	})

	t.Run("uses the drop row with the last intent", func(t *testing.T) {
		s, _ := newSession(testhelpers.ThreePeople())
		s.DragStart("1")
		s.DragOver(88, "3", rowRect(2))

		forest, _ := s.Drop("2")
		testhelpers.ExpectOutline(t, forest, "2 1 3")
	})

	t.Run("ids removed by the caller make the drop a no-op", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		s.DragStart("3")
		s.DragOver(1, "1", rowRect(0))
		s.SetForest(engine.Forest[Person]{testhelpers.Leaf("1", "Alice")})

		forest, moved := s.Drop("1")
		require.True(t, moved)
		testhelpers.ExpectOutline(t, forest, "1")
		require.Contains(t, rec.events, "change 1")
	})

	t.Run("does not mutate the tree it started with", func(t *testing.T) {
		original := testhelpers.NestedPeople()
		snapshot := original.Clone()

		s, _ := newSession(original)
		s.DragStart("2")
		s.DragOver(135, "5", rowRect(4))
		s.Drop("5")

		testhelpers.ExpectUnchanged(t, snapshot, original)
		testhelpers.ExpectOutline(t, s.Forest(), "1[3 4] 5[6 2]")
	})
}

func TestSession_DragEnd(t *testing.T) {
	t.Run("resets and notifies", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		s.DragStart("1")
		s.DragOver(45, "2", rowRect(1))
		s.DragEnd()

		require.Equal(t, session.Idle, s.Phase())
		require.Equal(t, session.DragState{}, s.State())
		require.Equal(t, "end", rec.events[len(rec.events)-1])
	})

	t.Run("notifies even when idle", func(t *testing.T) {
		s, rec := newSession(testhelpers.ThreePeople())
		s.DragEnd()
		require.Equal(t, []string{"end"}, rec.events)
	})

	t.Run("works without hooks", func(t *testing.T) {
		s := session.New(testhelpers.ThreePeople(), session.Hooks[Person]{})
		s.DragStart("1")
		s.DragOver(45, "2", rowRect(1))
		s.Drop("2")
		s.DragEnd()
		testhelpers.ExpectOutline(t, s.Forest(), "2[1] 3")
	})
}

func TestSession_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := session.New(testhelpers.ThreePeople(), session.Hooks[Person]{}, session.WithLogger(logger))
	s.DragStart("1")
	s.DragOver(45, "2", rowRect(1))
	s.Drop("2")

	out := buf.String()
	require.Contains(t, out, "drag start")
	require.Contains(t, out, "intent=over")
	require.Contains(t, out, "msg=drop")
}
