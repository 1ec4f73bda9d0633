// Package session tracks a single drag gesture over a tree of rows.
//
// A Session turns the pointer events reported by a presentation layer into
// drop intents and, on drop, into a new tree. It notifies the caller through
// optional synchronous hooks and exposes the style hint for every row so a UI
// can highlight the dragged row and the drop target.
//
// A Session is not safe for concurrent use; events must be delivered one at
// a time, as a UI event loop naturally does.
package session
