package engine

import (
	"context"
	"fmt"
	"strings"

	gqerrors "gq.dev/gq/internal/errors"
)

// Sync rebases branch and each of its local ancestors onto their parents,
// root first, and returns one result per branch it touched. The root of
// the lineage has no parent to sync against and produces no result.
//
// A pull or rebase that fails is aborted before its SyncConflict result is
// recorded, so the working tree is never left mid-rebase. Sync does not
// retry conflicts.
func (e *Engine) Sync(ctx context.Context, branch string) ([]SyncResult, error) {
	remotes, err := e.repo.Remotes(ctx)
	if err != nil {
		return nil, err
	}
	return e.sync(ctx, branch, remotes, make(map[string]bool))
}

func (e *Engine) sync(ctx context.Context, branch string, remotes []string, seen map[string]bool) ([]SyncResult, error) {
	if isRemoteName(branch, remotes) {
		return []SyncResult{{Branch: branch, Kind: SyncSuccess}}, nil
	}
	if seen[branch] {
		return nil, fmt.Errorf("upstream of %s loops back onto itself", branch)
	}
	seen[branch] = true

	parent, ok, err := e.graph.ParentOf(ctx, branch, ScopeLocal)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	results, err := e.sync(ctx, parent, remotes, seen)
	if err != nil {
		return results, err
	}

	result, err := e.syncOne(ctx, branch, parent)
	if err != nil {
		return results, err
	}
	return append(results, result), nil
}

func (e *Engine) syncOne(ctx context.Context, branch, parent string) (SyncResult, error) {
	if err := e.repo.Switch(ctx, branch); err != nil {
		return SyncResult{}, fmt.Errorf("failed to switch to %s: %w", branch, err)
	}

	opErr := e.repo.PullRebase(ctx)
	if opErr == nil {
		opErr = e.repo.Rebase(ctx, parent)
	}
	if opErr != nil {
		e.log.Debug("sync of %s onto %s failed: %v", branch, parent, opErr)
		if err := e.repo.RebaseAbort(ctx); err != nil {
			return SyncResult{}, fmt.Errorf("failed to abort rebase of %s: %w", branch, err)
		}
		return SyncResult{Branch: branch, Kind: SyncConflict, Parent: parent}, nil
	}

	diff, err := e.graph.CommitDiff(ctx, branch, parent)
	if err != nil {
		return SyncResult{}, err
	}
	if len(diff) == 0 {
		return SyncResult{Branch: branch, Kind: SyncNoDiff}, nil
	}
	return SyncResult{Branch: branch, Kind: SyncSuccess}, nil
}

func isRemoteName(branch string, remotes []string) bool {
	for _, remote := range remotes {
		if strings.HasPrefix(branch, remote+"/") {
			return true
		}
	}
	return false
}

// DeleteMerged removes a branch that has no commits beyond its parent. Its
// children are re-parented onto its parent first. Afterwards the sole child,
// or otherwise the parent, is checked out.
func (e *Engine) DeleteMerged(ctx context.Context, branch string) error {
	parent, ok, err := e.graph.ParentOf(ctx, branch, ScopeLocal)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", branch, gqerrors.ErrNoTrackedParent)
	}

	children, err := e.graph.ChildrenOf(ctx, branch)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := e.repo.SetUpstream(ctx, child, parent); err != nil {
			return fmt.Errorf("failed to re-parent %s onto %s: %w", child, parent, err)
		}
	}

	target := parent
	if len(children) == 1 {
		target = children[0]
	}
	if err := e.repo.Switch(ctx, target); err != nil {
		return err
	}
	return e.repo.DeleteBranch(ctx, branch, false)
}

// RecursiveRebase rebases branch onto onto, then every descendant onto its
// own parent, depth first. A conflict is aborted and reported as a
// *errors.RebaseConflictError.
func (e *Engine) RecursiveRebase(ctx context.Context, branch, onto string) error {
	if err := e.repo.Switch(ctx, branch); err != nil {
		return err
	}
	if err := e.repo.Rebase(ctx, onto); err != nil {
		e.log.Debug("rebase of %s onto %s failed: %v", branch, onto, err)
		if abortErr := e.repo.RebaseAbort(ctx); abortErr != nil {
			return fmt.Errorf("failed to abort rebase of %s: %w", branch, abortErr)
		}
		return gqerrors.NewRebaseConflictError(branch, onto)
	}

	children, err := e.graph.ChildrenOf(ctx, branch)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := e.RecursiveRebase(ctx, child, branch); err != nil {
			return err
		}
	}
	return nil
}
