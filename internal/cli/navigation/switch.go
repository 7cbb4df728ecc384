package navigation

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions"
	"gq.dev/gq/internal/cli/helpers"
	"gq.dev/gq/internal/runtime"
)

// NewSwitchCmd creates the switch command
func NewSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "switch [branch]",
		Short:             "Switch to a branch, or pick one from a list",
		Aliases:           []string{"bco"},
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompleteBranches,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SwitchAction(ctx, name)
			})
		},
	}
	return cmd
}
