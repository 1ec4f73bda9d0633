// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Reading piped input without blocking on a terminal
//   - Detecting whether prompts may be shown
package utils
