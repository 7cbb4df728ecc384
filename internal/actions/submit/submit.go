package submit

import (
	"fmt"
	"strings"

	"gq.dev/gq/internal/engine"
	gqerrors "gq.dev/gq/internal/errors"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// Options contains options for the submit command
type Options struct {
	// DryRun reports what would be pushed and opened without doing it
	DryRun bool
}

// target is a branch to submit and the base its review merges into
type target struct {
	branch *engine.Branch
	base   string
}

// Action pushes every branch of the current lineage, root first, and opens a
// review for each branch that has none. A branch reviews against its local
// parent. A root tracking <remote>/<name> reviews against <name>, unless that
// is the branch itself.
func Action(ctx *runtime.Context, opts Options) error {
	splog := ctx.Splog

	gw, err := ctx.Gateway()
	if err != nil {
		return err
	}

	stack, err := ctx.Engine.Load(ctx)
	if err != nil {
		return err
	}
	if stack.Current == "" {
		return gqerrors.ErrNotOnBranch
	}
	if err := stack.PopulateCommits(ctx, ctx.Engine.Graph()); err != nil {
		return err
	}

	remotes, err := ctx.Repo.Remotes(ctx)
	if err != nil {
		return err
	}
	var targets []target
	for _, name := range stack.Lineage(stack.Current) {
		b := stack.Branch(name)
		if base := reviewBase(b, remotes); base != "" {
			targets = append(targets, target{branch: b, base: base})
		}
	}
	if len(targets) == 0 {
		splog.Info("%s has no parent to review against; nothing to submit.", tui.ColorBranch(stack.Current))
		return nil
	}

	if opts.DryRun {
		splog.Info("Would submit:")
		for _, t := range targets {
			title, _ := Describe(t.branch.Commits)
			splog.Info("  %s → %s %s", tui.ColorBranch(t.branch.Name), t.base, tui.ColorDim(title))
		}
		return nil
	}

	splog.Info(tui.ColorGreen("Submitting stack"))
	for _, t := range targets {
		b := t.branch
		if err := ctx.Repo.Push(ctx, ctx.Config.Remote, b.Name, true); err != nil {
			splog.Info("  %s: %s", tui.ColorBranch(b.Name), tui.Cross())
			return fmt.Errorf("failed to push %s: %w", b.Name, err)
		}

		existing, err := gw.ReviewsFor(ctx, b.Name)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			splog.Info("  %s: %s %s", tui.ColorBranch(b.Name), tui.Check(), tui.ColorDim("updated "+existing[0].URL))
			continue
		}

		title, body := Describe(b.Commits)
		r, err := gw.CreateReview(ctx, b.Name, t.base, title, body)
		if err != nil {
			splog.Info("  %s: %s", tui.ColorBranch(b.Name), tui.Cross())
			return fmt.Errorf("failed to create review for %s: %w", b.Name, err)
		}
		splog.Info("  %s: %s %s", tui.ColorBranch(b.Name), tui.Check(), tui.ColorDim("created "+r.URL))
	}
	return nil
}

// reviewBase returns the branch b's review merges into, or "" when it has none
func reviewBase(b *engine.Branch, remotes []string) string {
	if b.LocalParent {
		return b.Parent
	}
	for _, remote := range remotes {
		if base, ok := strings.CutPrefix(b.Parent, remote+"/"); ok && base != "" && base != b.Name {
			return base
		}
	}
	return ""
}

// Describe derives a review title and body from a branch's commits, given
// oldest first. The title is the oldest subject and the body lists every
// commit.
func Describe(commits []engine.Commit) (title, body string) {
	if len(commits) == 0 {
		return "", ""
	}
	lines := make([]string, len(commits))
	for i, c := range commits {
		lines[i] = fmt.Sprintf("- %s %s", c.ShortSHA(), c.Title)
	}
	return commits[0].Title, strings.Join(lines, "\n")
}
