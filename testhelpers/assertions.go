// Package testhelpers provides testing utilities for treedrag, including
// forest fixtures and assertions on tree shape.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"treedrag.dev/treedrag/internal/engine"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Outline renders a forest's shape as ids, with children in brackets:
// "1[2 3] 4" is two roots where the first has children 2 and 3.
func Outline[T engine.Record](forest engine.Forest[T]) string {
	var b strings.Builder
	writeOutline(&b, forest)
	return b.String()
}

func writeOutline[T engine.Record](b *strings.Builder, nodes []engine.Node[T]) {
	for i, node := range nodes {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(node.ID())
		if len(node.Children) > 0 {
			b.WriteString("[")
			writeOutline(b, node.Children)
			b.WriteString("]")
		}
	}
}

// ExpectOutline asserts that the forest has the expected shape
func ExpectOutline[T engine.Record](t *testing.T, forest engine.Forest[T], expected string) {
	t.Helper()
	require.Equal(t, expected, Outline(forest), "Tree shape does not match")
}

// ExpectUnchanged asserts that forest is deep-equal to a snapshot taken
// before an operation ran
func ExpectUnchanged[T engine.Record](t *testing.T, snapshot, forest engine.Forest[T]) {
	t.Helper()
	require.Equal(t, snapshot, forest, "Tree was modified")
}
