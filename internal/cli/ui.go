package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"treedrag.dev/treedrag/internal/cli/helpers"
	"treedrag.dev/treedrag/internal/document"
	"treedrag.dev/treedrag/internal/errors"
	"treedrag.dev/treedrag/internal/runtime"
	"treedrag.dev/treedrag/internal/tui"
)

// newUICmd creates the ui command
func newUICmd() *cobra.Command {
	var output outputOptions

	cmd := &cobra.Command{
		Use:   "ui [FILE]",
		Short: "Rearrange rows with the mouse in an interactive table",
		Long: `Open an interactive table and rearrange rows by dragging them with the mouse.

Drop a row on the top edge of another row to insert it above, on the bottom
edge to insert it below, or on the middle to nest it. Press enter to keep the
result, q to discard it. Without FILE a small demo list of people is shown.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return runUI(ctx, args, output)
			})
		},
	}

	cmd.Flags().StringVarP(&output.path, "output", "o", "", "Write the result to this file instead of stdout.")
	cmd.Flags().StringVarP(&output.format, "format", "f", "", "Output format: yaml or json.")

	return cmd
}

func runUI(ctx *runtime.Context, args []string, output outputOptions) error {
	if os.Getenv("TREEDRAG_TEST_NO_INTERACTIVE") != "" {
		return errors.ErrInteractiveDisabled
	}
	if !tui.IsTTY() {
		return fmt.Errorf("ui needs an interactive terminal")
	}

	forest := document.Demo()
	if len(args) == 1 {
		loaded, err := document.Load(args[0], ctx.Stdin)
		if err != nil {
			return err
		}
		forest = loaded
	}

	ctx.Splog.SetQuiet(true)
	result, saved, err := tui.RunDragTable(forest, ctx.Config.UI, ctx.Splog.Logger())
	ctx.Splog.SetQuiet(false)
	if err != nil {
		return err
	}
	if !saved {
		ctx.Splog.Info("Discarded changes.")
		return nil
	}
	return writeForest(ctx, result, output)
}
