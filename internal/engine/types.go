package engine

// Record is the caller's payload. Only its ID is interpreted by the engine.
type Record interface {
	ID() string
}

// Node pairs a record with its ordered children. A nil Children is a leaf.
type Node[T Record] struct {
	Record   T
	Children []Node[T]
}

// ID returns the id of the node's record
func (n Node[T]) ID() string {
	return n.Record.ID()
}

// IsLeaf reports whether the node has no children
func (n Node[T]) IsLeaf() bool {
	return len(n.Children) == 0
}

// Forest is the ordered list of root nodes making up a whole tree
type Forest[T Record] []Node[T]

// FlatNode is one row of a flattened Forest, in display order
type FlatNode[T Record] struct {
	Record      T
	Depth       int
	ParentID    string // "" for roots
	HasChildren bool
}

// NewLeaf creates a childless node
func NewLeaf[T Record](record T) Node[T] {
	return Node[T]{Record: record}
}

// NewNode creates a node with the given children
func NewNode[T Record](record T, children ...Node[T]) Node[T] {
	return Node[T]{Record: record, Children: children}
}
