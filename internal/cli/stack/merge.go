package stack

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions/merge"
	"gq.dev/gq/internal/cli/helpers"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// NewMergeCmd creates the merge command
func NewMergeCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge the reviews of the current stack, root first",
		Long: `Merge the review of every branch in the current stack, root first,
waiting for each merge to land before the next one starts.

Merging stops at the first review that cannot be merged.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return merge.Action(ctx, merge.Options{
					UI: !plain && !ctx.Splog.IsQuiet() && tui.IsTTY(),
				})
			})
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print one line per branch instead of the progress display")

	return cmd
}
