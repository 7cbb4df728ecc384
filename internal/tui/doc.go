// Package tui provides the terminal user interface for gq.
//
// It handles:
//   - Interactive prompts and selections (using survey)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - Merge progress display (using bubbletea)
package tui
