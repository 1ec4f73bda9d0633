package cli

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"treedrag.dev/treedrag/internal/cli/helpers"
	"treedrag.dev/treedrag/internal/document"
	"treedrag.dev/treedrag/internal/engine"
	"treedrag.dev/treedrag/internal/errors"
	"treedrag.dev/treedrag/internal/intent"
	"treedrag.dev/treedrag/internal/runtime"
	"treedrag.dev/treedrag/internal/tui"
	"treedrag.dev/treedrag/internal/utils"
)

type moveOptions struct {
	file   string
	source string
	target string
	intent string
	strict bool
	output outputOptions
}

// newMoveCmd creates the move command
func newMoveCmd() *cobra.Command {
	var opts moveOptions

	cmd := &cobra.Command{
		Use:   "move FILE",
		Short: "Move one row above, over or below another and print the resulting tree",
		Long: `Move one row relative to another and print the resulting tree.

The row named by --source is placed above or below the row named by --target as
its sibling, or dropped over it to become its last child. When a row is nested,
its own children move up into the place it left.

FILE may be - to read rows from stdin. If --intent is omitted, an interactive
prompt asks for it.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return runMove(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "Id of the row to move.")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Id of the row to move relative to.")
	cmd.Flags().StringVarP(&opts.intent, "intent", "i", "", "Where to drop the row: above, over or below.")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when either id is not in the tree instead of leaving it unchanged.")
	cmd.Flags().StringVarP(&opts.output.path, "output", "o", "", "Write the result to this file instead of stdout.")
	cmd.Flags().StringVarP(&opts.output.format, "format", "f", "", "Output format: yaml or json (default from the output file extension, else yaml).")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runMove(ctx *runtime.Context, opts moveOptions) error {
	forest, err := document.Load(opts.file, ctx.Stdin)
	if err != nil {
		return err
	}

	in, err := resolveIntent(opts)
	if err != nil {
		return err
	}

	for _, id := range []string{opts.source, opts.target} {
		if forest.Contains(id) {
			continue
		}
		if opts.strict {
			return errors.NewNodeNotFoundError(id)
		}
		ctx.Splog.Warn("Row %s is not in the tree; nothing was moved.", tui.ColorYellow(id))
	}

	moved := engine.ApplyMove(forest, opts.source, opts.target, in)
	if reflect.DeepEqual(moved, forest) {
		ctx.Splog.Debug("moving %s %s %s left the tree unchanged", opts.source, in, opts.target)
	} else {
		ctx.Splog.Debug("moved %s %s %s", opts.source, in, opts.target)
	}

	if err := writeForest(ctx, moved, opts.output); err != nil {
		return err
	}
	if opts.output.path != "" {
		ctx.Splog.Info("Moved %s %s %s.", opts.source, tui.ColorCyan(in.String()), opts.target)
	}
	return nil
}

func resolveIntent(opts moveOptions) (intent.Intent, error) {
	if opts.intent != "" {
		return intent.Parse(opts.intent)
	}
	if !utils.IsInteractive() {
		return intent.None, fmt.Errorf("%w: --intent is required when not running interactively", errors.ErrInvalidIntent)
	}
	return tui.PromptIntent(opts.source, opts.target)
}
