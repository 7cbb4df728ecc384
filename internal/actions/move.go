package actions

import (
	"fmt"

	"gq.dev/gq/internal/engine"
	"gq.dev/gq/internal/errors"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// Direction represents the traversal direction
type Direction string

const (
	// DirectionUp moves to a child of the current branch
	DirectionUp Direction = "UP"
	// DirectionDown moves to the local parent of the current branch
	DirectionDown Direction = "DOWN"
	// DirectionTop follows children until a tip is reached
	DirectionTop Direction = "TOP"
	// DirectionBottom follows local parents until the root is reached
	DirectionBottom Direction = "BOTTOM"
)

// MoveAction switches to a branch based on the given direction
func MoveAction(ctx *runtime.Context, direction Direction) error {
	stack, err := ctx.Engine.Load(ctx)
	if err != nil {
		return err
	}
	current := stack.Current
	if current == "" {
		return errors.ErrNotOnBranch
	}

	var target string
	switch direction {
	case DirectionUp:
		target, err = stepUp(ctx, stack, current)
	case DirectionDown:
		target = stepDown(stack, current)
	case DirectionTop:
		target, err = traverseUpward(ctx, stack, current)
	case DirectionBottom:
		target = traverseDownward(ctx, stack, current)
	default:
		return fmt.Errorf("invalid direction: %s", direction)
	}
	if err != nil {
		return err
	}

	if target == current {
		edge := "top"
		if direction == DirectionDown || direction == DirectionBottom {
			edge = "bottom"
		}
		ctx.Splog.Info(tui.ColorGreen(fmt.Sprintf("Already at the %s of the stack.", edge)))
		return nil
	}

	return checkoutAndReport(ctx, target)
}

// checkoutAndReport switches to branch and prints `git status`
func checkoutAndReport(ctx *runtime.Context, branch string) error {
	if err := ctx.Repo.Switch(ctx, branch); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branch, err)
	}
	ctx.Splog.Info("Checked out branch: %s", tui.ColorBranch(branch))

	status, err := ctx.Repo.Status(ctx)
	if err != nil {
		return err
	}
	if status != "" {
		ctx.Splog.Page(status)
		ctx.Splog.Newline()
	}
	return nil
}

func stepDown(stack *engine.Stack, name string) string {
	b := stack.Branch(name)
	if b == nil || !b.LocalParent {
		return name
	}
	return b.Parent
}

// stepUp returns the only child of name, asks which child to follow when
// there are several, and returns name itself at a tip
func stepUp(ctx *runtime.Context, stack *engine.Stack, name string) (string, error) {
	b := stack.Branch(name)
	if b == nil || len(b.Children) == 0 {
		return name, nil
	}
	if len(b.Children) == 1 {
		return b.Children[0], nil
	}
	i, err := ctx.Prompter.Select("Which branch do you want to go up to?", b.Children, 0)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(b.Children) {
		return "", errors.ErrAmbiguousSelection
	}
	return b.Children[i], nil
}

// traverseDownward walks the local parent chain to the root of the stack
func traverseDownward(ctx *runtime.Context, stack *engine.Stack, name string) string {
	for {
		parent := stepDown(stack, name)
		if parent == name {
			return name
		}
		ctx.Splog.Info("⮑  %s", parent)
		name = parent
	}
}

// traverseUpward walks children to a tip, prompting at every fork
func traverseUpward(ctx *runtime.Context, stack *engine.Stack, name string) (string, error) {
	for {
		next, err := stepUp(ctx, stack, name)
		if err != nil {
			return "", err
		}
		if next == name {
			return name, nil
		}
		ctx.Splog.Info("⮑  %s", next)
		name = next
	}
}
