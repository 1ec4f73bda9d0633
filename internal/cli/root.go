// Package cli implements the treedrag command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"treedrag.dev/treedrag/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:   "treedrag",
		Short: "treedrag reorders and nests rows of a tree the way drag and drop does",
		Long: `treedrag reorders and nests rows of a tree the way drag and drop does.

Rows are read from YAML or JSON documents. A row can be moved above or below
another row, or dropped over it to become its last child. Moves can be applied
directly, replayed from a scripted sequence of pointer events, or made with the
mouse in an interactive table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			rc, err := runtime.Load(runtime.Options{
				ConfigPath: configPath,
				Dir:        dir,
				Debug:      debug,
				Stdin:      cmd.InOrStdin(),
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			cmd.SetContext(runtime.WithContext(cmd.Context(), rc))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return nil
			}
			return rc.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Read configuration from this file instead of the global and project files.")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print debug messages.")

	// Add subcommands
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
