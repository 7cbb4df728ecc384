package split

import (
	"fmt"

	"gq.dev/gq/internal/engine"
	gqerrors "gq.dev/gq/internal/errors"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// Action asks which commits of the current branch start a new branch and
// replaces the branch with a chain of narrower ones.
//
// A selected commit becomes the oldest commit of its group, so the list is
// shown newest first: everything above a selection up to the previous one
// lands on one branch.
func Action(ctx *runtime.Context) error {
	splog := ctx.Splog
	graph := ctx.Engine.Graph()

	branch, err := ctx.Repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	parent, ok, err := graph.ParentOf(ctx, branch, engine.ScopeLocal)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("cannot split %s: %w", branch, gqerrors.ErrNoTrackedParent)
	}

	commits, err := graph.CommitDiff(ctx, branch, parent)
	if err != nil {
		return err
	}
	if len(commits) < 2 {
		splog.Info("%s has %d commit(s) beyond %s; nothing to split.", tui.ColorBranch(branch), len(commits), parent)
		return nil
	}

	options := make([]string, len(commits))
	for i, c := range commits {
		options[i] = c.ShortSHA() + " " + c.Title
	}
	picked, err := ctx.Prompter.MultiSelect("Select commits to split on", options)
	if err != nil {
		return err
	}

	splitPoints := make(map[string]bool, len(picked))
	for _, i := range picked {
		if i >= 0 && i < len(commits) {
			splitPoints[commits[i].SHA] = true
		}
	}
	groups := engine.GroupCommits(commits, splitPoints)
	if len(groups) < 2 {
		splog.Info("No split points selected; %s is unchanged.", tui.ColorBranch(branch))
		return nil
	}

	created, err := ctx.Engine.Split(ctx, branch, splitPoints)
	if err != nil {
		return err
	}

	splog.Info("Split %s into:", tui.ColorBranch(branch))
	for i, name := range created {
		splog.Info("  %s %s", tui.ColorBranch(name), tui.ColorDim(fmt.Sprintf("(%d commit(s))", len(groups[i]))))
	}
	return nil
}
