package branch

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions"
	"gq.dev/gq/internal/cli/helpers"
	"gq.dev/gq/internal/runtime"
)

// NewCommitCmd creates the commit command
func NewCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "commit [git commit args...]",
		Short:              "Run git commit",
		Aliases:            []string{"cc"},
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CommitAction(ctx, args)
			})
		},
	}
}
