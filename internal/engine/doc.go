// Package engine applies drag-and-drop edits to a tree of records.
//
// It is the core of treedrag, responsible for:
//   - Modelling the tree as an ordered Forest of generic Nodes
//   - Looking up, walking, flattening and validating a Forest
//   - Reordering a node among its siblings or nesting it under another node
//
// Every operation is pure: a move works on a structural copy and the input
// Forest is never mutated, so callers may keep the previous tree for diffing.
package engine
