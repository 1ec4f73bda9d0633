package testhelpers

import (
	"treedrag.dev/treedrag/internal/engine"
)

// Person is a minimal record used across package tests
type Person struct {
	Key  string
	Name string
	Role string
}

// ID returns the person's key
func (p Person) ID() string {
	return p.Key
}

// P creates a Person with only a key and a name
func P(key, name string) Person {
	return Person{Key: key, Name: name}
}

// Leaf creates a childless person node
func Leaf(key, name string) engine.Node[Person] {
	return engine.NewLeaf(P(key, name))
}

// Branch creates a person node with children
func Branch(key, name string, children ...engine.Node[Person]) engine.Node[Person] {
	return engine.NewNode(P(key, name), children...)
}

// ThreePeople returns the flat forest [1 Alice, 2 Bob, 3 Charlie]
func ThreePeople() engine.Forest[Person] {
	return engine.Forest[Person]{
		Leaf("1", "Alice"),
		Leaf("2", "Bob"),
		Leaf("3", "Charlie"),
	}
}

// NestedPeople returns a forest with two levels of nesting:
//
//	1 Alice
//	  2 Bob
//	    3 Charlie
//	  4 Diana
//	5 Eve
//	  6 Frank
func NestedPeople() engine.Forest[Person] {
	return engine.Forest[Person]{
		Branch("1", "Alice",
			Branch("2", "Bob",
				Leaf("3", "Charlie"),
			),
			Leaf("4", "Diana"),
		),
		Branch("5", "Eve",
			Leaf("6", "Frank"),
		),
	}
}
