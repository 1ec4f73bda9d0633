package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"treedrag.dev/treedrag/internal/engine"
	"treedrag.dev/treedrag/internal/intent"
	"treedrag.dev/treedrag/testhelpers"
)

func TestApplyMove_Siblings(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		target   string
		intent   intent.Intent
		expected string
	}{
		{name: "last above first", source: "3", target: "1", intent: intent.Above, expected: "3 1 2"},
		{name: "first below last", source: "1", target: "3", intent: intent.Below, expected: "2 3 1"},
		{name: "first below its next sibling", source: "1", target: "2", intent: intent.Below, expected: "2 1 3"},
		{name: "last above its previous sibling", source: "3", target: "2", intent: intent.Above, expected: "1 3 2"},
		{name: "first above second keeps order", source: "1", target: "2", intent: intent.Above, expected: "1 2 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.ApplyMove(testhelpers.ThreePeople(), tt.source, tt.target, tt.intent)
			testhelpers.ExpectOutline(t, result, tt.expected)
		})
	}
}

func TestApplyMove_Nesting(t *testing.T) {
	t.Run("nests a root under another root", func(t *testing.T) {
		result := engine.ApplyMove(testhelpers.ThreePeople(), "2", "1", intent.Over)

		expected := engine.Forest[testhelpers.Person]{
			testhelpers.Branch("1", "Alice", testhelpers.Leaf("2", "Bob")),
			testhelpers.Leaf("3", "Charlie"),
		}
		require.Equal(t, expected, result)
	})

	t.Run("appends after existing children", func(t *testing.T) {
		result := engine.ApplyMove(testhelpers.NestedPeople(), "6", "1", intent.Over)
		testhelpers.ExpectOutline(t, result, "1[2[3] 4 6] 5")
	})

	t.Run("promotes the moved node's children into its old slot", func(t *testing.T) {
		result := engine.ApplyMove(testhelpers.NestedPeople(), "2", "5", intent.Over)
		testhelpers.ExpectOutline(t, result, "1[3 4] 5[6 2]")

		moved, ok := result.Find("2")
		require.True(t, ok)
		require.Equal(t, "Bob", moved.Name)
	})

	t.Run("nests a node under one of its own children", func(t *testing.T) {
		result := engine.ApplyMove(testhelpers.NestedPeople(), "2", "3", intent.Over)
		testhelpers.ExpectOutline(t, result, "1[3[2] 4] 5[6]")
	})

	t.Run("nests a root under its grandchild", func(t *testing.T) {
		result := engine.ApplyMove(testhelpers.NestedPeople(), "1", "3", intent.Over)
		testhelpers.ExpectOutline(t, result, "2[3[1]] 4 5[6]")
	})

	t.Run("nested node becomes a leaf", func(t *testing.T) {
		result := engine.ApplyMove(testhelpers.NestedPeople(), "1", "6", intent.Over)

		var moved engine.Node[testhelpers.Person]
		result.Walk(func(node engine.Node[testhelpers.Person], _ int) bool {
			if node.ID() == "1" {
				moved = node
				return false
			}
			return true
		})
		require.Nil(t, moved.Children)
		require.True(t, moved.IsLeaf())
	})
}

func TestApplyMove_AcrossLevels(t *testing.T) {
	t.Run("moves a child out to the root level", func(t *testing.T) {
		result := engine.ApplyMove(testhelpers.NestedPeople(), "6", "1", intent.Below)
		testhelpers.ExpectOutline(t, result, "1[2[3] 4] 6 5")

		// Eve lost her only child and is a plain leaf again
		require.Equal(t, testhelpers.Leaf("5", "Eve"), result[2])
	})

	t.Run("moves a subtree between parents", func(t *testing.T) {
		result := engine.ApplyMove(testhelpers.NestedPeople(), "2", "6", intent.Above)
		testhelpers.ExpectOutline(t, result, "1[4] 5[2[3] 6]")
	})

	t.Run("moves a grandchild next to a cousin", func(t *testing.T) {
		result := engine.ApplyMove(testhelpers.NestedPeople(), "3", "6", intent.Below)
		testhelpers.ExpectOutline(t, result, "1[2 4] 5[6 3]")
	})

	t.Run("reorders inside a parent", func(t *testing.T) {
		result := engine.ApplyMove(testhelpers.NestedPeople(), "4", "2", intent.Above)
		testhelpers.ExpectOutline(t, result, "1[4 2[3]] 5[6]")
	})
}

func TestApplyMove_NoOps(t *testing.T) {
	t.Run("self drop over is a no-op for every node", func(t *testing.T) {
		forest := testhelpers.NestedPeople()
		snapshot := forest.Clone()
		for _, id := range forest.IDs() {
			result := engine.ApplyMove(forest, id, id, intent.Over)
			testhelpers.ExpectUnchanged(t, snapshot, result)
		}
	})

	t.Run("self drop above or below is a no-op", func(t *testing.T) {
		forest := testhelpers.ThreePeople()
		testhelpers.ExpectOutline(t, engine.ApplyMove(forest, "2", "2", intent.Above), "1 2 3")
		testhelpers.ExpectOutline(t, engine.ApplyMove(forest, "2", "2", intent.Below), "1 2 3")
	})

	t.Run("unknown source returns the input", func(t *testing.T) {
		forest := testhelpers.NestedPeople()
		for _, in := range intent.All {
			result := engine.ApplyMove(forest, "missing", "1", in)
			require.Equal(t, forest, result)
			require.Same(t, &forest[0], &result[0])
		}
	})

	t.Run("unknown target returns the input", func(t *testing.T) {
		forest := testhelpers.NestedPeople()
		result := engine.ApplyMove(forest, "1", "missing", intent.Below)
		require.Same(t, &forest[0], &result[0])
	})

	t.Run("sibling insert next to a descendant is refused", func(t *testing.T) {
		forest := testhelpers.NestedPeople()
		testhelpers.ExpectOutline(t, engine.ApplyMove(forest, "1", "3", intent.Above), "1[2[3] 4] 5[6]")
		testhelpers.ExpectOutline(t, engine.ApplyMove(forest, "1", "4", intent.Below), "1[2[3] 4] 5[6]")
	})

	t.Run("no intent is a no-op", func(t *testing.T) {
		forest := testhelpers.ThreePeople()
		testhelpers.ExpectOutline(t, engine.ApplyMove(forest, "3", "1", intent.None), "1 2 3")
	})

	t.Run("empty forest", func(t *testing.T) {
		var forest engine.Forest[testhelpers.Person]
		require.Nil(t, engine.ApplyMove(forest, "1", "2", intent.Over))
	})
}

func TestApplyMove_DoesNotMutateInput(t *testing.T) {
	forest := testhelpers.NestedPeople()
	snapshot := forest.Clone()

	for _, source := range snapshot.IDs() {
		for _, target := range snapshot.IDs() {
			for _, in := range intent.All {
				_ = engine.ApplyMove(forest, source, target, in)
				testhelpers.ExpectUnchanged(t, snapshot, forest)
			}
		}
	}
}

func TestApplyMove_PreservesNodes(t *testing.T) {
	forest := testhelpers.NestedPeople()
	count := forest.Count()

	for _, source := range forest.IDs() {
		for _, target := range forest.IDs() {
			for _, in := range intent.All {
				result := engine.ApplyMove(forest, source, target, in)
				require.Equal(t, count, result.Count(), "%s %s %s", source, in, target)
				require.NoError(t, result.Validate(), "%s %s %s", source, in, target)
			}
		}
	}
}

func TestApplyMove_Deterministic(t *testing.T) {
	a := engine.ApplyMove(testhelpers.NestedPeople(), "3", "5", intent.Over)
	b := engine.ApplyMove(testhelpers.NestedPeople(), "3", "5", intent.Over)
	require.Equal(t, a, b)
}
