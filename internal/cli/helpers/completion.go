// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// CompleteBranches is a helper for cobra.ValidArgsFunction and RegisterFlagCompletionFunc
// that returns all branch names in the repository.
func CompleteBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ctx, err := runtime.GetContext(cmd.Context(), tui.NewConsoleSplog(cmd.ErrOrStderr()))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := ctx.Repo.Branches(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
