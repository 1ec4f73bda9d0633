// Package replay drives a drag session from a scripted list of pointer
// events and records the notifications it emits. It is how the CLI exercises
// the session without a terminal.
package replay
