package actions

import (
	"strings"

	"gq.dev/gq/internal/output"
	"gq.dev/gq/internal/runtime"
)

// LogOptions contains options for the log command
type LogOptions struct {
	// Reverse draws roots first instead of tips first
	Reverse   bool
	NoCommits bool
}

// LogAction displays the branch tree
func LogAction(ctx *runtime.Context, opts LogOptions) error {
	stack, err := ctx.Engine.Load(ctx)
	if err != nil {
		return err
	}
	if err := stack.PopulateCommits(ctx, ctx.Engine.Graph()); err != nil {
		return err
	}

	lines := output.RenderStack(stack, output.LogOptions{
		TopDown:   opts.Reverse,
		NoCommits: opts.NoCommits,
	})
	if len(lines) == 0 {
		ctx.Splog.Info("No branches.")
		return nil
	}

	ctx.Splog.Page(strings.Join(lines, "\n"))
	ctx.Splog.Newline()
	return nil
}
