package actions

import (
	"gq.dev/gq/internal/review"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// ReviewsAction lists the repository's open reviews
func ReviewsAction(ctx *runtime.Context) error {
	gw, err := ctx.Gateway()
	if err != nil {
		return err
	}
	reviews, err := gw.Reviews(ctx)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		ctx.Splog.Info("No open reviews.")
		return nil
	}
	for _, r := range reviews {
		ctx.Splog.Info("#%s %s %s → %s %s", r.ID, stateText(r.State), tui.ColorBranch(r.Branch), r.Base, tui.ColorDim(r.URL))
	}
	return nil
}

func stateText(s review.State) string {
	switch s {
	case review.Approved, review.Merged:
		return tui.ColorGreen(s.String())
	case review.Rejected, review.Conflicted, review.Closed:
		return tui.ColorRed(s.String())
	default:
		return tui.ColorYellow(s.String())
	}
}
