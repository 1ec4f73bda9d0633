package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"treedrag.dev/treedrag/internal/cli/helpers"
	"treedrag.dev/treedrag/internal/document"
	"treedrag.dev/treedrag/internal/runtime"
	"treedrag.dev/treedrag/internal/tui"
	"treedrag.dev/treedrag/internal/tui/components/tree"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	var (
		short   bool
		columns []string
	)

	cmd := &cobra.Command{
		Use:          "show FILE",
		Short:        "Render the rows of a document as a tree",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				forest, err := document.Load(args[0], ctx.Stdin)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("columns") {
					columns = ctx.Config.UI.Columns
				}
				return renderTree(ctx, forest, columns, short)
			})
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Show row ids only.")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Fields shown after each id (default from ui.columns).")

	return cmd
}

func renderTree(ctx *runtime.Context, forest document.Forest, columns []string, short bool) error {
	opts := tree.RenderOptions{Short: short}
	if tui.IsTTY() {
		opts.Width = tui.TerminalWidth()
	}

	renderer := tree.NewRenderer(forest, tui.RowLabel(columns))
	lines := renderer.Render(opts)
	if len(lines) == 0 {
		ctx.Splog.Info("No rows.")
		return nil
	}
	_, err := fmt.Fprintln(ctx.Stdout, strings.Join(lines, "\n"))
	return err
}
