package sync

import (
	"errors"
	"fmt"

	"gq.dev/gq/internal/engine"
	gqerrors "gq.dev/gq/internal/errors"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// Options contains options for the sync command
type Options struct {
	// NoDelete skips the prompts to delete branches left without commits
	NoDelete bool
	// Interactive allows prompts. Without it conflicts and empty branches
	// are only reported.
	Interactive bool
}

// Action syncs the current branch's lineage, then offers to fix conflicts
// and to delete branches that no longer carry commits of their own
func Action(ctx *runtime.Context, opts Options) error {
	splog := ctx.Splog

	current, err := ctx.Repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	splog.Info(tui.ColorGreen("Syncing current stack..."))
	results, syncErr := ctx.Engine.Sync(ctx, current)
	for _, r := range results {
		splog.Info("%s: %s", tui.ColorBranch(r.Branch), statusText(r))
	}
	if syncErr != nil {
		return syncErr
	}
	splog.Newline()

	for _, r := range results {
		if r.Kind != engine.SyncConflict {
			continue
		}
		if err := fixConflict(ctx, r, opts); err != nil {
			return err
		}
	}

	if !opts.NoDelete {
		for _, r := range results {
			if r.Kind != engine.SyncNoDiff {
				continue
			}
			if err := offerDelete(ctx, r.Branch, opts); err != nil {
				return err
			}
		}
	}

	splog.Info(tui.ColorGreen("Complete"))
	return nil
}

func statusText(r engine.SyncResult) string {
	switch r.Kind {
	case engine.SyncNoDiff:
		return tui.Check() + tui.ColorDim(" (no diff)")
	case engine.SyncConflict:
		return tui.Cross() + tui.ColorRed(" (conflicts with "+r.Parent+")")
	default:
		return tui.Check()
	}
}

// fixConflict reports a conflict and, when the user agrees, replays the
// pull on the conflicted branch attached to the terminal so it can be
// resolved by hand
func fixConflict(ctx *runtime.Context, r engine.SyncResult, opts Options) error {
	conflict := gqerrors.NewRebaseConflictError(r.Branch, r.Parent)
	ctx.Splog.Warn("%s", conflict.Error())

	if !opts.Interactive {
		ctx.Splog.Tip("Switch to %s, run 'git pull --rebase', fix the conflicts, then sync again.", r.Branch)
		return nil
	}

	fix, err := ctx.Prompter.Confirm(fmt.Sprintf("Resolve conflicts on %s now?", r.Branch), true)
	if err != nil {
		return err
	}
	if !fix {
		return nil
	}

	ctx.Splog.Info("Please fix the conflicts, then attempt to sync again.")
	if err := ctx.Repo.Switch(ctx, r.Branch); err != nil {
		return err
	}
	if err := ctx.Repo.GitInteractive(ctx, "pull", "--rebase"); err != nil {
		// a stopped rebase is the expected outcome here: the user resolves it
		ctx.Splog.Debug("pull --rebase on %s stopped: %v", r.Branch, err)
		ctx.Splog.Info("Rebase of %s stopped for conflict resolution.", tui.ColorBranch(r.Branch))
	}
	return nil
}

func offerDelete(ctx *runtime.Context, branch string, opts Options) error {
	if !opts.Interactive {
		ctx.Splog.Tip("%s has no commits beyond its parent. Run sync interactively to delete it.", branch)
		return nil
	}

	remove, err := ctx.Prompter.Confirm(fmt.Sprintf("Delete branch %s?", tui.ColorYellow(branch)), false)
	if err != nil {
		return err
	}
	if !remove {
		return nil
	}
	if err := ctx.Engine.DeleteMerged(ctx, branch); err != nil {
		if errors.Is(err, gqerrors.ErrNoTrackedParent) {
			return nil
		}
		return fmt.Errorf("failed to delete %s: %w", branch, err)
	}
	ctx.Splog.Info("Deleted %s.", tui.ColorBranch(branch))
	return nil
}
