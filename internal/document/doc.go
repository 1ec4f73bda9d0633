// Package document reads and writes row documents: YAML or JSON sequences of
// rows, each with an id, arbitrary fields and optional nested subRows.
//
//	- id: "1"
//	  name: Alice
//	  subRows:
//	    - id: "2"
//	      name: Bob
//
// Rows are loaded as an engine.Forest of Row records.
package document
