package cli

import (
	"fmt"
	"os"

	"treedrag.dev/treedrag/internal/document"
	"treedrag.dev/treedrag/internal/runtime"
)

// outputOptions selects where and how a resulting tree is written
type outputOptions struct {
	path   string
	format string
}

func (o outputOptions) resolveFormat() (document.Format, error) {
	if o.format != "" {
		return document.ParseFormat(o.format)
	}
	if o.path != "" {
		return document.FormatFor(o.path), nil
	}
	return document.FormatYAML, nil
}

// writeForest writes the tree to the output file, or to stdout when no file is set
func writeForest(ctx *runtime.Context, forest document.Forest, opts outputOptions) error {
	format, err := opts.resolveFormat()
	if err != nil {
		return err
	}
	if opts.path == "" {
		return document.Write(ctx.Stdout, forest, format)
	}

	data, err := document.Encode(forest, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.path, err)
	}
	ctx.Splog.Debug("wrote %d rows to %s", forest.Count(), opts.path)
	return nil
}
