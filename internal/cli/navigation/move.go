package navigation

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions"
	"gq.dev/gq/internal/cli/helpers"
	"gq.dev/gq/internal/runtime"
)

func newMoveCmd(use, short, long string, aliases []string, direction actions.Direction) *cobra.Command {
	return &cobra.Command{
		Use:          use,
		Short:        short,
		Long:         long,
		Aliases:      aliases,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.MoveAction(ctx, direction)
			})
		},
	}
}

// NewUpCmd creates the up command
func NewUpCmd() *cobra.Command {
	return newMoveCmd("up", "Switch to the child of the current branch",
		`Switch to the child of the current branch.

If the current branch has multiple children, you will be prompted to
select one.`,
		[]string{"bu"}, actions.DirectionUp)
}

// NewDownCmd creates the down command
func NewDownCmd() *cobra.Command {
	return newMoveCmd("down", "Switch to the parent of the current branch",
		`Switch to the local branch the current branch tracks.`,
		[]string{"bd"}, actions.DirectionDown)
}

// NewTopCmd creates the top command
func NewTopCmd() *cobra.Command {
	return newMoveCmd("top", "Switch to the tip branch of the current stack",
		`Switch to the tip branch of the current stack.

This command navigates up the children chain from the current branch until
it reaches a branch with no children. If multiple children exist at any
level, you will be prompted to select which branch to follow.`,
		[]string{"bt"}, actions.DirectionTop)
}

// NewBottomCmd creates the bottom command
func NewBottomCmd() *cobra.Command {
	return newMoveCmd("bottom", "Switch to the root branch of the current stack",
		`Switch to the root branch of the current stack: the first branch down
the parent chain that does not track another local branch.`,
		[]string{"bb"}, actions.DirectionBottom)
}
