package actions

import (
	"fmt"

	"gq.dev/gq/internal/errors"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
	"gq.dev/gq/internal/utils"
)

// CreateAction creates name on top of the current branch, tracking it as
// the new branch's parent, and checks it out. An empty name is asked for and
// the name is sanitized before use.
func CreateAction(ctx *runtime.Context, name string) error {
	current, err := ctx.Repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if current == "HEAD" {
		return errors.ErrNotOnBranch
	}

	if name == "" {
		if name, err = ctx.Prompter.Input("Branch name:", ""); err != nil {
			return err
		}
	}
	sanitized := utils.SanitizeBranchName(name)
	if sanitized == "" {
		return fmt.Errorf("invalid branch name %q", name)
	}
	if sanitized != name {
		ctx.Splog.Debug("branch name %q sanitized to %q", name, sanitized)
		name = sanitized
	}

	if err := ctx.Repo.CreateTrackingBranch(ctx, name, current); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	ctx.Splog.Info("Created branch: %s", tui.ColorBranch(name))
	return nil
}

// SwitchAction checks out name, or asks which local branch to check out.
// The choices are listed in display order, current lineage first.
func SwitchAction(ctx *runtime.Context, name string) error {
	if name == "" {
		stack, err := ctx.Engine.Load(ctx)
		if err != nil {
			return err
		}
		ordered := stack.Ordered()
		if len(ordered) == 0 {
			return fmt.Errorf("no local branches")
		}
		branches := make([]string, len(ordered))
		defaultIndex := 0
		for i, b := range ordered {
			branches[i] = b.Name
			if b.Name == stack.Current {
				defaultIndex = i
			}
		}
		i, err := ctx.Prompter.Select("Select a branch", branches, defaultIndex)
		if err != nil {
			return err
		}
		if i < 0 || i >= len(branches) {
			return errors.ErrAmbiguousSelection
		}
		name = branches[i]
	}
	return checkoutAndReport(ctx, name)
}

// CommitAction hands `git commit` the terminal
func CommitAction(ctx *runtime.Context, args []string) error {
	return ctx.Repo.GitInteractive(ctx, append([]string{"commit"}, args...)...)
}
