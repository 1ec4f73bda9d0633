// Package runtime provides the execution context for treedrag commands.
//
// It encapsulates shared dependencies needed by commands, such as the
// loaded configuration, the logger and the standard streams.
package runtime
