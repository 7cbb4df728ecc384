package engine

import (
	"context"
	"fmt"

	gqerrors "gq.dev/gq/internal/errors"
)

// GroupCommits partitions a branch's unique commits, given newest first,
// into contiguous groups. A commit in splitPoints closes the group it ends
// (it becomes that group's oldest commit), and the oldest commit always
// closes the last group. Groups come back root-first, each oldest-first.
func GroupCommits(newestFirst []Commit, splitPoints map[string]bool) []SplitGroup {
	var groups []SplitGroup
	var current SplitGroup
	for i, c := range newestFirst {
		current = append(SplitGroup{c}, current...)
		if splitPoints[c.SHA] || i == len(newestFirst)-1 {
			groups = append([]SplitGroup{current}, groups...)
			current = nil
		}
	}
	return groups
}

// Split replaces branch with one new branch per group of commits, chained
// onto branch's parent. The new branches are named <branch>-<n>, root
// first. The original children are re-parented onto the last new branch
// and rebased, the original branch is deleted, and the last new branch is
// left checked out. The names of the new branches are returned.
func (e *Engine) Split(ctx context.Context, branch string, splitPoints map[string]bool) ([]string, error) {
	parent, ok, err := e.graph.ParentOf(ctx, branch, ScopeLocal)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("cannot split %s: %w", branch, gqerrors.ErrNoTrackedParent)
	}

	commits, err := e.graph.CommitDiff(ctx, branch, parent)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, fmt.Errorf("%s has no commits beyond %s to split", branch, parent)
	}
	groups := GroupCommits(commits, splitPoints)

	children, err := e.graph.ChildrenOf(ctx, branch)
	if err != nil {
		return nil, err
	}
	existing, err := e.graph.Branches(ctx)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, name := range existing {
		taken[name] = true
	}

	cursor := parent
	created := make([]string, 0, len(groups))
	n := 1
	for _, group := range groups {
		name := fmt.Sprintf("%s-%d", branch, n)
		for taken[name] {
			n++
			name = fmt.Sprintf("%s-%d", branch, n)
		}
		n++

		if err := e.repo.CreateTrackingBranch(ctx, name, cursor); err != nil {
			return created, fmt.Errorf("failed to create %s: %w", name, err)
		}
		taken[name] = true
		created = append(created, name)

		for _, c := range group {
			if err := e.repo.CherryPick(ctx, c.SHA); err != nil {
				if abortErr := e.repo.CherryPickAbort(ctx); abortErr != nil {
					e.log.Debug("cherry-pick abort failed: %v", abortErr)
				}
				return created, fmt.Errorf("failed to cherry-pick %s onto %s: %w", c.ShortSHA(), name, err)
			}
		}
		cursor = name
	}

	for _, child := range children {
		if err := e.repo.SetUpstream(ctx, child, cursor); err != nil {
			return created, fmt.Errorf("failed to re-parent %s onto %s: %w", child, cursor, err)
		}
	}

	if err := e.repo.DeleteBranch(ctx, branch, true); err != nil {
		return created, err
	}

	for _, child := range children {
		if err := e.RecursiveRebase(ctx, child, cursor); err != nil {
			return created, err
		}
	}

	if err := e.repo.Switch(ctx, cursor); err != nil {
		return created, err
	}
	return created, nil
}
