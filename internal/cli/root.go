// Package cli wires gq's cobra commands together.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gq.dev/gq/internal/cli/branch"
	"gq.dev/gq/internal/cli/navigation"
	"gq.dev/gq/internal/cli/stack"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gq",
		Short: "gq manages stacks of git branches that track one another",
		Long: `gq manages stacks of git branches.

A stack is a chain of local branches where each branch tracks the one
below it. gq draws the stack, moves around it, keeps it rebased, opens a
review for every branch and merges them in order.

Git commands gq does not define itself are passed through to git.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print warnings and errors")

	rootCmd.AddCommand(newInitCmd())

	rootCmd.AddCommand(navigation.NewLogCmd())
	rootCmd.AddCommand(navigation.NewUpCmd())
	rootCmd.AddCommand(navigation.NewDownCmd())
	rootCmd.AddCommand(navigation.NewTopCmd())
	rootCmd.AddCommand(navigation.NewBottomCmd())
	rootCmd.AddCommand(navigation.NewSwitchCmd())

	rootCmd.AddCommand(branch.NewCreateCmd())
	rootCmd.AddCommand(branch.NewSplitCmd())
	rootCmd.AddCommand(branch.NewCommitCmd())

	rootCmd.AddCommand(stack.NewSyncCmd())
	rootCmd.AddCommand(stack.NewSubmitCmd())
	rootCmd.AddCommand(stack.NewMergeCmd())
	rootCmd.AddCommand(stack.NewReviewsCmd())

	return rootCmd
}
