package merge

import (
	"context"
	"fmt"

	gqerrors "gq.dev/gq/internal/errors"
	"gq.dev/gq/internal/review"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// Options contains options for the merge command
type Options struct {
	// UI shows the interactive progress display instead of plain lines
	UI bool
	// Sleep waits between polls of the review service. Defaults to review.Sleep.
	Sleep review.SleepFunc
}

// Action merges the reviews of the current lineage, root first, waiting for
// each merge to land before moving on. It stops at the first review that
// cannot be merged.
func Action(ctx *runtime.Context, opts Options) error {
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
	lineage := stack.Lineage(stack.Current)

	work := func(wctx context.Context, reporter tui.MergeReporter) error {
		return mergeLineage(wctx, gw, lineage, reporter, opts.Sleep)
	}

	if opts.UI {
		return tui.RunMergeUI(ctx, lineage, work)
	}
	ctx.Splog.Info(tui.ColorGreen("Merging stack"))
	return work(ctx, tui.NewPlainMergeReporter(ctx.Splog, lineage))
}

func mergeLineage(ctx context.Context, gw review.Gateway, branches []string, reporter tui.MergeReporter, sleep review.SleepFunc) error {
	for i, branch := range branches {
		reporter.Started(i)

		reviews, err := gw.ReviewsFor(ctx, branch)
		if err != nil {
			reporter.Failed(i, err)
			return err
		}
		if len(reviews) == 0 {
			reporter.Skipped(i, "Up to date")
			continue
		}

		mr, err := gw.Merge(ctx, reviews[0])
		if err != nil {
			reporter.Failed(i, err)
			return fmt.Errorf("failed to merge %s: %w", branch, err)
		}
		mr, err = review.AwaitMerge(ctx, gw, mr, sleep)
		if err != nil {
			reporter.Failed(i, err)
			return fmt.Errorf("failed to merge %s: %w", branch, err)
		}
		if mr.State != review.MergeMerged {
			err := fmt.Errorf("review %s is %s", mr.Review.ID, mr.Review.State)
			reporter.Failed(i, err)
			return fmt.Errorf("failed to merge %s: %w", branch, err)
		}
		reporter.Completed(i, mr.Review.URL)
	}
	return nil
}
