package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"treedrag.dev/treedrag/internal/config"
	"treedrag.dev/treedrag/internal/tui"
)

// Context provides access to configuration and output for commands
type Context struct {
	Config *config.Config
	Splog  *tui.Splog
	Stdin  io.Reader
	Stdout io.Writer
}

// Options selects how a Context is built
type Options struct {
	// ConfigPath is an explicit config file; when empty the global and
	// project files are merged
	ConfigPath string
	// Dir is the directory searched for the project config file
	Dir   string
	Debug bool
	// The streams default to the process streams. Documents and reports go
	// to Stdout; Splog messages go to Stderr.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewContext creates a context with the given configuration and a console logger
func NewContext(cfg *config.Config) *Context {
	splog, _ := tui.NewSplogWithOptions(tui.SplogOptions{Writer: os.Stderr})
	return &Context{
		Config: cfg,
		Splog:  splog,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// Load builds a context: it loads configuration, then opens the logger with
// the configured log file
func Load(opts Options) (*Context, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFile(opts.ConfigPath)
	} else {
		cfg, err = config.Load(opts.Dir)
	}
	if err != nil {
		return nil, err
	}

	stdin, stdout, stderr := opts.Stdin, opts.Stdout, opts.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{
		Writer:   stderr,
		Debug:    opts.Debug || os.Getenv("DEBUG") != "",
		LogFile:  tui.LogFilePath(cfg.Log),
		Rotation: cfg.Log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	return &Context{
		Config: cfg,
		Splog:  splog,
		Stdin:  stdin,
		Stdout: stdout,
	}, nil
}

// Close releases the log file
func (c *Context) Close() error {
	return c.Splog.Close()
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying rc
func WithContext(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// GetContext returns the runtime context stored by WithContext
func GetContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		return nil, fmt.Errorf("no runtime context")
	}
	rc, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || rc == nil {
		return nil, fmt.Errorf("no runtime context")
	}
	return rc, nil
}
