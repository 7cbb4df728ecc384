package branch

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions/split"
	"gq.dev/gq/internal/cli/helpers"
)

// NewSplitCmd creates the split command
func NewSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split",
		Short: "Split the current branch into a chain of smaller branches",
		Long: `Split the current branch into a chain of smaller branches.

You will be asked to select commits, newest first. Each selected commit
starts a new branch: it and every newer commit up to the next selection
move to that branch. The new branches are named <branch>-1, <branch>-2 and
so on from the root, the original branch is deleted and its children are
rebased onto the last new branch.`,
		Aliases:      []string{"sp"},
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, split.Action)
		},
	}
}
