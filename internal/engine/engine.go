package engine

import (
	"slices"

	"treedrag.dev/treedrag/internal/intent"
)

// ApplyMove moves the source node relative to the target node and returns
// the resulting forest.
//
// Above and Below insert the source, with its subtree, next to the target.
// Over nests the source as the target's last child; the source's own
// children are promoted into the slot it vacated, so it always lands as a
// leaf. Unknown ids, a node nested over itself, and a target that travels
// with the source are no-ops that return forest itself.
func ApplyMove[T Record](forest Forest[T], sourceID, targetID string, in intent.Intent) Forest[T] {
	if !in.Valid() {
		return forest
	}
	if sourceID == targetID && in == intent.Over {
		return forest
	}
	if !forest.Contains(sourceID) || !forest.Contains(targetID) {
		return forest
	}

	out := forest.Clone()

	// Detach the source from its current collection
	src, _ := out.locate(sourceID)
	siblings := out.collection(src.parent)
	moved := (*siblings)[src.index]
	*siblings = slices.Delete(*siblings, src.index, src.index+1)

	if in == intent.Over {
		// Promote the subtree into the vacated slot, in order
		*siblings = slices.Insert(*siblings, src.index, moved.Children...)
		moved.Children = nil
	}
	if len(*siblings) == 0 {
		*siblings = nil
	}

	if in == intent.Over {
		// Positions shifted, so look the target up again
		dst, ok := out.locate(targetID)
		if !ok {
			return forest
		}
		target := &(*out.collection(dst.parent))[dst.index]
		target.Children = append(target.Children, moved)
		return out
	}

	// The target is re-located after detachment since removing an earlier
	// sibling shifts its index
	dst, ok := out.locate(targetID)
	if !ok {
		return forest
	}
	insertAt := dst.index
	if in == intent.Below {
		insertAt++
	}
	targetSiblings := out.collection(dst.parent)
	*targetSiblings = slices.Insert(*targetSiblings, insertAt, moved)
	return out
}
