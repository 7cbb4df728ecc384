// Package navigation provides CLI commands for viewing and moving around the stack.
package navigation

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions"
	"gq.dev/gq/internal/cli/helpers"
	"gq.dev/gq/internal/runtime"
)

// NewLogCmd creates the log command
func NewLogCmd() *cobra.Command {
	var opts actions.LogOptions

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Draw every local branch as a tree, showing dependencies and commits",
		Long: `Draw every local branch as a tree.

Each branch is drawn under the branch it tracks, with its newest commit
subject next to its name and its unique commits, newest first, below it.
By default the tree is drawn tips first so the current stack ends up
nearest the prompt.`,
		Aliases:      []string{"l"},
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.LogAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Reverse, "reverse", "r", false, "Draw roots first, with children below their parents")
	cmd.Flags().BoolVar(&opts.NoCommits, "no-commits", false, "Only show branch names")

	return cmd
}
