// Package tui provides the terminal user interface for treedrag.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Interactive prompts (using survey)
//   - The mouse-driven drag table (using bubbletea)
//   - Component stories for the storyboard
package tui
