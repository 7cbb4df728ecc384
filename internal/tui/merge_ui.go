package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mergeRow struct {
	label  string
	status MergeStatus
	detail string
	err    error
}

// mergeFinishedMsg is sent once the merge workflow closed its update channel
type mergeFinishedMsg struct{}

// MergeModel is the bubbletea model for stack merge progress
type MergeModel struct {
	rows     []mergeRow
	spinner  spinner.Model
	updates  <-chan MergeEvent
	done     bool
	quitting bool
}

// NewMergeModel creates a model with one queued row per label
func NewMergeModel(labels []string, updates <-chan MergeEvent) MergeModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	rows := make([]mergeRow, len(labels))
	for i, label := range labels {
		rows[i] = mergeRow{label: label}
	}
	return MergeModel{rows: rows, spinner: s, updates: updates}
}

// waitForEvent blocks until the merge workflow reports progress
func waitForEvent(updates <-chan MergeEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-updates
		if !ok {
			return mergeFinishedMsg{}
		}
		return ev
	}
}

// Init initializes the bubbletea model
func (m MergeModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.updates))
}

// Update handles message updates for the bubbletea model
func (m MergeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MergeEvent:
		m = m.apply(msg)
		return m, waitForEvent(m.updates)
	case mergeFinishedMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MergeModel) apply(ev MergeEvent) MergeModel {
	if ev.Index < 0 || ev.Index >= len(m.rows) {
		return m
	}
	rows := append([]mergeRow(nil), m.rows...)
	rows[ev.Index].status = ev.Status
	rows[ev.Index].detail = ev.Detail
	rows[ev.Index].err = ev.Err
	m.rows = rows
	return m
}

// Done reports whether the merge workflow finished
func (m MergeModel) Done() bool {
	return m.done
}

// View renders the TUI
func (m MergeModel) View() string {
	var b strings.Builder
	b.WriteString("Merging stack\n")
	for _, row := range m.rows {
		b.WriteString("  ")
		b.WriteString(m.icon(row.status))
		b.WriteString(" ")
		b.WriteString(ColorBranch(row.label))
		switch {
		case row.err != nil:
			b.WriteString(" " + ColorRed(row.err.Error()))
		case row.status == MergeSkipped:
			b.WriteString(" " + ColorYellow(row.detail))
		case row.detail != "":
			b.WriteString(" " + ColorDim(row.detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m MergeModel) icon(status MergeStatus) string {
	switch status {
	case MergeRunning:
		return m.spinner.View()
	case MergeDone:
		return Check()
	case MergeFailed:
		return Cross()
	case MergeSkipped:
		return ColorYellow("-")
	default:
		return ColorDim("○")
	}
}

// MergeWork performs a stack merge, reporting progress as it goes
type MergeWork func(ctx context.Context, reporter MergeReporter) error

// RunMergeUI runs work while showing its progress with a spinner. Quitting
// the UI cancels the context handed to work.
func RunMergeUI(ctx context.Context, labels []string, work MergeWork) error {
	return runMergeUI(ctx, labels, work, os.Stdin, os.Stdout)
}

func runMergeUI(ctx context.Context, labels []string, work MergeWork, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reporter := NewChannelMergeReporter()
	result := make(chan error, 1)
	go func() {
		defer reporter.Close()
		result <- work(ctx, reporter)
	}()

	program := tea.NewProgram(NewMergeModel(labels, reporter.Updates()), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if m, ok := final.(MergeModel); ok && m.quitting {
		cancel()
	}
	if err != nil {
		cancel()
		<-result
		return fmt.Errorf("merge progress display failed: %w", err)
	}
	return <-result
}
