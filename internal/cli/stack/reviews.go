package stack

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/actions"
	"gq.dev/gq/internal/cli/helpers"
)

// NewReviewsCmd creates the reviews command
func NewReviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "reviews",
		Short:        "List the repository's open reviews",
		Aliases:      []string{"rv"},
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.ReviewsAction)
		},
	}
}
