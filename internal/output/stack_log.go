package output

import (
	"github.com/charmbracelet/lipgloss"

	"gq.dev/gq/internal/engine"
)

// LogOptions configures RenderStack
type LogOptions struct {
	TopDown   bool
	NoCommits bool
}

var (
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	currentStyle = lipgloss.NewStyle().Bold(true)
)

// branchNode adapts a stack branch to the tree renderer
type branchNode struct {
	stack  *engine.Stack
	branch *engine.Branch
	opts   LogOptions
}

func (n branchNode) Children() []branchNode {
	children := make([]branchNode, 0, len(n.branch.Children))
	for _, name := range n.branch.Children {
		children = append(children, branchNode{stack: n.stack, branch: n.stack.Branch(name), opts: n.opts})
	}
	return children
}

func (n branchNode) Render(color lipgloss.TerminalColor) []string {
	nameStyle := lipgloss.NewStyle().Foreground(color)
	isCurrent := n.branch.Name == n.stack.Current
	if isCurrent {
		nameStyle = nameStyle.Inherit(currentStyle)
	}

	header := nameStyle.Render(n.branch.Name)
	if isCurrent {
		header += dimStyle.Render(" (current)")
	}
	if newest, ok := n.branch.NewestCommit(); ok {
		header += " - " + newest.Title
	}

	lines := []string{header}
	if n.opts.NoCommits {
		return lines
	}
	for i := len(n.branch.Commits) - 1; i >= 0; i-- {
		c := n.branch.Commits[i]
		lines = append(lines, dimStyle.Render(c.ShortSHA())+" "+c.Title)
	}
	return lines
}

// RenderStack draws every tree in the forest. Bottom-up (the default) puts
// the current branch's stack last so it ends up nearest the prompt.
func RenderStack(s *engine.Stack, opts LogOptions) []string {
	roots := append([]string(nil), s.Roots...)
	if !opts.TopDown {
		for i, j := 0, len(roots)-1; i < j; i, j = i+1, j-1 {
			roots[i], roots[j] = roots[j], roots[i]
		}
	}

	cycle := NewColorCycle()
	var lines []string
	for i, name := range roots {
		if i > 0 {
			cycle.Advance()
		}
		root := branchNode{stack: s, branch: s.Branch(name), opts: opts}
		lines = append(lines, RenderTree[branchNode](root, cycle, TreeOptions{TopDown: opts.TopDown})...)
	}
	return lines
}
