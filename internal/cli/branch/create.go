// Package branch provides CLI commands for creating and reshaping branches.
package branch

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions"
	"gq.dev/gq/internal/cli/helpers"
	"gq.dev/gq/internal/runtime"
)

// NewCreateCmd creates the create command
func NewCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a branch stacked on the current one",
		Long: `Create a branch on top of the current branch and check it out.

The new branch tracks the current one, which is how gq records the stack.
You will be prompted for a name when none is given.`,
		Aliases:      []string{"bc"},
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CreateAction(ctx, name)
			})
		},
	}
}
