package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"treedrag.dev/treedrag/internal/cli/helpers"
	"treedrag.dev/treedrag/internal/document"
	"treedrag.dev/treedrag/internal/replay"
	"treedrag.dev/treedrag/internal/runtime"
)

// newReplayCmd creates the replay command
func newReplayCmd() *cobra.Command {
	var (
		events string
		output outputOptions
	)

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Drive a drag session with scripted pointer events",
		Long: `Drive a drag session over the rows of FILE with a scripted list of pointer
events, and print every notification the session emits.

The events file is a YAML or JSON list such as:

  - {type: dragStart, row: 3}
  - {type: dragOver, row: 1, y: 2, top: 0, height: 30}
  - {type: dragLeave, row: 1, related: 1/handle}
  - {type: drop, row: 1}
  - {type: dragEnd}

With --output the resulting tree is written to a file; otherwise it is printed
as a tree after the notifications.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return runReplay(ctx, args[0], events, output)
			})
		},
	}

	cmd.Flags().StringVarP(&events, "events", "e", "", "File with the event script.")
	cmd.Flags().StringVarP(&output.path, "output", "o", "", "Write the resulting tree to this file.")
	cmd.Flags().StringVarP(&output.format, "format", "f", "", "Output format: yaml or json.")
	_ = cmd.MarkFlagRequired("events")

	return cmd
}

func runReplay(ctx *runtime.Context, file, eventsPath string, output outputOptions) error {
	forest, err := document.Load(file, ctx.Stdin)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(eventsPath)
	if err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}
	events, err := replay.ParseEvents(data)
	if err != nil {
		return err
	}

	result, err := replay.Run(forest, events, ctx.Config.GutterSize, ctx.Splog.Logger())
	if err != nil {
		return err
	}

	for _, line := range result.Transcript {
		if _, err := fmt.Fprintln(ctx.Stdout, line); err != nil {
			return err
		}
	}
	ctx.Splog.Debug("replayed %d events, %d moves", len(events), result.Moves)

	if output.path != "" || output.format != "" {
		return writeForest(ctx, result.Forest, output)
	}
	if _, err := fmt.Fprintln(ctx.Stdout); err != nil {
		return err
	}
	return renderTree(ctx, result.Forest, ctx.Config.UI.Columns, false)
}
