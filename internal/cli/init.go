package cli

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions"
	"gq.dev/gq/internal/cli/helpers"
	"gq.dev/gq/internal/runtime"
)

func newInitCmd() *cobra.Command {
	var opts actions.InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Choose the remote and review tool gq uses in this repository",
		Long: `Choose the remote and review tool gq uses in this repository.

The answers are stored in .git/.gq_config. Commands work without it, falling
back to the origin remote and no review tool.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.InitAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Remote, "remote", "", "The remote reviews are pushed to")
	cmd.Flags().StringVar(&opts.ReviewTool, "review-tool", "", "The review tool to use (github or none)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Reinitialize without asking")

	return cmd
}
