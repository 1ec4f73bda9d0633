package document

import (
	"fmt"
	"slices"
	"sort"

	"treedrag.dev/treedrag/internal/engine"
)

// Row is a record with an id and free-form fields, kept in document order
type Row struct {
	Key    string
	Fields map[string]any
	order  []string
}

// ID returns the row id
func (r Row) ID() string {
	return r.Key
}

// NewRow creates a row. Field order is alphabetical.
func NewRow(id string, fields map[string]any) Row {
	order := make([]string, 0, len(fields))
	for name := range fields {
		order = append(order, name)
	}
	sort.Strings(order)
	return Row{Key: id, Fields: fields, order: order}
}

// FieldNames returns the field names in document order
func (r Row) FieldNames() []string {
	if len(r.order) == len(r.Fields) {
		return slices.Clone(r.order)
	}
	return NewRow(r.Key, r.Fields).order
}

// Get returns a field rendered as text, or "" when it is absent
func (r Row) Get(name string) string {
	if name == "id" {
		return r.Key
	}
	value, ok := r.Fields[name]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// Forest is a tree of rows
type Forest = engine.Forest[Row]

// Demo returns five people, flat, for trying the drag table
func Demo() Forest {
	person := func(id, name, role string) engine.Node[Row] {
		return engine.NewLeaf(Row{
			Key:    id,
			Fields: map[string]any{"name": name, "role": role},
			order:  []string{"name", "role"},
		})
	}
	return Forest{
		person("1", "Alice", "Manager"),
		person("2", "Bob", "Developer"),
		person("3", "Charlie", "Designer"),
		person("4", "Diana", "Developer"),
		person("5", "Eve", "QA Engineer"),
	}
}
