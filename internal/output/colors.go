package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// BranchColors is the palette branches cycle through, as RGB triples
var BranchColors = [][3]int{
	{76, 203, 241},  // Light blue
	{235, 130, 188}, // Pink
	{77, 202, 125},  // Green
	{244, 98, 81},   // Red
	{80, 132, 243},  // Blue
	{245, 200, 0},   // Yellow
	{159, 131, 228}, // Purple
	{248, 144, 72},  // Orange
	{110, 173, 38},  // Dark green
}

// ColorCycle hands out palette colors in order and wraps at the end
type ColorCycle struct {
	palette []lipgloss.TerminalColor
	index   int
}

// NewColorCycle creates a cycle over palette, or over BranchColors when palette is empty
func NewColorCycle(palette ...lipgloss.TerminalColor) *ColorCycle {
	if len(palette) == 0 {
		for _, rgb := range BranchColors {
			palette = append(palette, lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])))
		}
	}
	return &ColorCycle{palette: palette}
}

// Current returns the color at the cursor
func (c *ColorCycle) Current() lipgloss.TerminalColor {
	return c.palette[c.index]
}

// Advance moves to the next color and returns it
func (c *ColorCycle) Advance() lipgloss.TerminalColor {
	c.index = (c.index + 1) % len(c.palette)
	return c.Current()
}
