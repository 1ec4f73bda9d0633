package engine

import (
	"treedrag.dev/treedrag/internal/errors"
)

// location addresses a node by the index path of its parent and its index
// among that parent's children. A nil parent path means the root collection.
type location struct {
	parent []int
	index  int
}

// locate finds id depth-first and returns where it lives
func (f Forest[T]) locate(id string) (location, bool) {
	return locateIn(f, id, nil)
}

func locateIn[T Record](nodes []Node[T], id string, parent []int) (location, bool) {
	for i, node := range nodes {
		if node.ID() == id {
			return location{parent: parent, index: i}, true
		}
		if len(node.Children) > 0 {
			path := append(append([]int(nil), parent...), i)
			if loc, ok := locateIn(node.Children, id, path); ok {
				return loc, true
			}
		}
	}
	return location{}, false
}

// collection returns the sibling slice addressed by a parent path
func (f *Forest[T]) collection(parent []int) *[]Node[T] {
	siblings := (*[]Node[T])(f)
	for _, i := range parent {
		siblings = &(*siblings)[i].Children
	}
	return siblings
}

// Find returns the record with the given id, searching depth-first
func (f Forest[T]) Find(id string) (T, bool) {
	loc, ok := f.locate(id)
	if !ok {
		var zero T
		return zero, false
	}
	return (*f.collection(loc.parent))[loc.index].Record, true
}

// Contains reports whether a node with the given id exists
func (f Forest[T]) Contains(id string) bool {
	_, ok := f.locate(id)
	return ok
}

// Walk visits every node in pre-order. Returning false from fn stops the walk.
func (f Forest[T]) Walk(fn func(node Node[T], depth int) bool) {
	walk(f, 0, fn)
}

func walk[T Record](nodes []Node[T], depth int, fn func(Node[T], int) bool) bool {
	for _, node := range nodes {
		if !fn(node, depth) {
			return false
		}
		if !walk(node.Children, depth+1, fn) {
			return false
		}
	}
	return true
}

// Count returns the total number of nodes in the forest
func (f Forest[T]) Count() int {
	count := 0
	f.Walk(func(Node[T], int) bool {
		count++
		return true
	})
	return count
}

// IDs returns every id in pre-order
func (f Forest[T]) IDs() []string {
	ids := make([]string, 0, len(f))
	f.Walk(func(node Node[T], _ int) bool {
		ids = append(ids, node.ID())
		return true
	})
	return ids
}

// Clone returns a structural deep copy. Records are copied by value and
// nil children lists stay nil.
func (f Forest[T]) Clone() Forest[T] {
	if f == nil {
		return nil
	}
	return Forest[T](cloneNodes(f))
}

func cloneNodes[T Record](nodes []Node[T]) []Node[T] {
	if nodes == nil {
		return nil
	}
	out := make([]Node[T], len(nodes))
	for i, node := range nodes {
		out[i] = Node[T]{
			Record:   node.Record,
			Children: cloneNodes(node.Children),
		}
	}
	return out
}

// Flatten lists every node in display order with its depth
func (f Forest[T]) Flatten() []FlatNode[T] {
	var rows []FlatNode[T]
	var visit func(nodes []Node[T], depth int, parentID string)
	visit = func(nodes []Node[T], depth int, parentID string) {
		for _, node := range nodes {
			rows = append(rows, FlatNode[T]{
				Record:      node.Record,
				Depth:       depth,
				ParentID:    parentID,
				HasChildren: len(node.Children) > 0,
			})
			visit(node.Children, depth+1, node.ID())
		}
	}
	visit(f, 0, "")
	return rows
}

// Validate checks that every id is non-empty and unique across the forest
func (f Forest[T]) Validate() error {
	seen := make(map[string]bool)
	var err error
	f.Walk(func(node Node[T], _ int) bool {
		id := node.ID()
		switch {
		case id == "":
			err = errors.ErrEmptyID
		case seen[id]:
			err = errors.NewDuplicateIDError(id)
		default:
			seen[id] = true
			return true
		}
		return false
	})
	return err
}
