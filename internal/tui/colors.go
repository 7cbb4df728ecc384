package tui

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Glyphs used in status lines
const (
	CheckMark = "✓"
	CrossMark = "✕"
)

// ColorGreen colors text green
func ColorGreen(text string) string { return successStyle.Render(text) }

// ColorRed colors text red
func ColorRed(text string) string { return failureStyle.Render(text) }

// ColorYellow colors text yellow
func ColorYellow(text string) string { return warnStyle.Render(text) }

// ColorBranch colors a branch name
func ColorBranch(name string) string { return branchStyle.Render(name) }

// ColorDim renders text in a muted color
func ColorDim(text string) string { return dimStyle.Render(text) }

// Check returns a green check mark
func Check() string { return ColorGreen(CheckMark) }

// Cross returns a red cross
func Cross() string { return ColorRed(CrossMark) }
