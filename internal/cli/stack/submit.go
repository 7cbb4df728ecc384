package stack

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions/submit"
	"gq.dev/gq/internal/cli/helpers"
	"gq.dev/gq/internal/runtime"
)

// NewSubmitCmd creates the submit command
func NewSubmitCmd() *cobra.Command {
	var opts submit.Options

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Push the current stack and open a review for each branch",
		Long: `Push every branch of the current stack, root first, and open a review
against its parent when it has none. A branch created straight from a
remote branch, such as origin/main, is reviewed against main.

The review title is the subject of the branch's oldest commit and the body
lists its commits.`,
		Aliases:      []string{"s"},
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return submit.Action(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report what would be submitted without pushing")

	return cmd
}
