package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"treedrag.dev/treedrag/internal/cli/helpers"
	"treedrag.dev/treedrag/internal/intent"
	"treedrag.dev/treedrag/internal/runtime"
)

// newClassifyCmd creates the classify command
func newClassifyCmd() *cobra.Command {
	var (
		offset float64
		height float64
		gutter float64
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print the drop intent for a pointer offset within a row",
		Long: `Print whether a pointer at --offset from the top of a row of --height would drop
above, over or below it.

The top and bottom edge zones are a third of the row each, but never smaller
than the gutter (gutter-size in the configuration) and never more than half
the row.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if !cmd.Flags().Changed("gutter") {
					gutter = ctx.Config.GutterSize
				}
				in := intent.Classify(offset, height, gutter)
				_, err := fmt.Fprintln(ctx.Stdout, in)
				return err
			})
		},
	}

	cmd.Flags().Float64Var(&offset, "offset", 0, "Pointer distance from the top of the row.")
	cmd.Flags().Float64Var(&height, "height", 0, "Height of the row.")
	cmd.Flags().Float64Var(&gutter, "gutter", intent.DefaultGutter, "Minimum edge zone size.")
	_ = cmd.MarkFlagRequired("offset")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}
