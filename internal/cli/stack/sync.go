// Package stack provides CLI commands for operating on entire stacks.
package stack

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions/sync"
	"gq.dev/gq/internal/cli/helpers"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// NewSyncCmd creates the sync command
func NewSyncCmd() *cobra.Command {
	var noDelete bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Rebase the current stack onto its updated parents",
		Long: `Rebase every branch of the current stack, root first, onto its
updated parent.

Each branch is pulled with --rebase and then rebased onto the branch it
tracks. A conflicting rebase is aborted and reported; you will be offered
to replay it so the conflict can be resolved by hand. Branches left
without commits of their own are offered for deletion.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return sync.Action(ctx, sync.Options{
					NoDelete:    noDelete,
					Interactive: tui.InteractiveAllowed(),
				})
			})
		},
	}

	cmd.Flags().BoolVar(&noDelete, "no-delete", false, "Don't offer to delete branches without commits")

	return cmd
}
