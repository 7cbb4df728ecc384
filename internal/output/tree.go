package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Tree glyphs
const (
	glyphSpace   = "  "
	glyphPipe    = "│ "
	glyphBodyBar = "║ "
	glyphTee     = "├─"
	glyphCorner  = "└─"
	glyphCornerB = "┌─"
)

// Node is anything that can be drawn as a tree. Render returns the node's
// own lines: a header line followed by any body lines.
type Node[T any] interface {
	Children() []T
	Render(color lipgloss.TerminalColor) []string
}

// TreeOptions configures rendering behavior
type TreeOptions struct {
	// TopDown draws the root first with children beneath it. By default the
	// tree is drawn bottom-up: root last, tips at the top.
	TopDown bool
}

type treeRenderer[T Node[T]] struct {
	opts  TreeOptions
	cycle *ColorCycle
}

// RenderTree draws root and its descendants. Siblings share cycle: the first
// child keeps its parent's color and each later sibling advances the cycle,
// so a linear chain stays one color.
func RenderTree[T Node[T]](root T, cycle *ColorCycle, opts TreeOptions) []string {
	if cycle == nil {
		cycle = NewColorCycle()
	}
	r := &treeRenderer[T]{opts: opts, cycle: cycle}

	var blocks [][]string
	r.visit(root, "", "", "", "", cycle.Current(), &blocks)

	if !opts.TopDown {
		for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
			blocks[i], blocks[j] = blocks[j], blocks[i]
		}
	}

	var lines []string
	for _, block := range blocks {
		lines = append(lines, block...)
	}
	return lines
}

// visit appends one block per node in pre-order. padding is the prefix
// inherited from ancestors. bodyCont continues this node's connector column
// past its body lines; descCont does the same for its descendants.
func (r *treeRenderer[T]) visit(node T, padding, connector, bodyCont, descCont string, color lipgloss.TerminalColor, blocks *[][]string) {
	style := lipgloss.NewStyle().Foreground(color)
	own := node.Render(color)

	block := make([]string, 0, len(own))
	for i, line := range own {
		if i == 0 {
			if connector != "" {
				line = style.Render(connector) + line
			}
			block = append(block, padding+line)
			continue
		}
		block = append(block, padding+bodyCont+style.Render(glyphBodyBar)+line)
	}
	*blocks = append(*blocks, block)

	children := node.Children()
	for i, child := range children {
		if i > 0 {
			r.cycle.Advance()
		}
		childConnector, childBody, childDesc := glyphTee, glyphPipe, glyphPipe
		if i == len(children)-1 {
			if r.opts.TopDown {
				childConnector, childBody, childDesc = glyphCorner, glyphSpace, glyphSpace
			} else {
				// drawn above its siblings: the line runs down past its body only
				childConnector, childBody, childDesc = glyphCornerB, glyphPipe, glyphSpace
			}
		}
		r.visit(child, padding+descCont, childConnector, childBody, childDesc, r.cycle.Current(), blocks)
	}
}
