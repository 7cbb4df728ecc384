package tui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	gqerrors "gq.dev/gq/internal/errors"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestChannelMergeReporter(t *testing.T) {
	t.Parallel()

	t.Run("close can be called multiple times", func(t *testing.T) {
		t.Parallel()
		reporter := NewChannelMergeReporter()
		require.NotPanics(t, func() {
			reporter.Close()
			reporter.Close()
		})
		_, ok := <-reporter.Updates()
		require.False(t, ok)
	})

	t.Run("events are delivered in order", func(t *testing.T) {
		t.Parallel()
		reporter := NewChannelMergeReporter()
		boom := errors.New("boom")
		reporter.Started(0)
		reporter.Completed(0, "#1")
		reporter.Skipped(1, "Up to date")
		reporter.Failed(2, boom)
		reporter.Close()

		var got []MergeEvent
		for ev := range reporter.Updates() {
			got = append(got, ev)
		}
		require.Equal(t, []MergeEvent{
			{Index: 0, Status: MergeRunning},
			{Index: 0, Status: MergeDone, Detail: "#1"},
			{Index: 1, Status: MergeSkipped, Detail: "Up to date"},
			{Index: 2, Status: MergeFailed, Err: boom},
		}, got)
	})
}

func TestMergeModel(t *testing.T) {
	t.Parallel()

	t.Run("applies events to rows", func(t *testing.T) {
		t.Parallel()
		var model tea.Model = NewMergeModel([]string{"a", "b", "c"}, nil)
		model, _ = model.Update(MergeEvent{Index: 0, Status: MergeDone, Detail: "#1"})
		model, _ = model.Update(MergeEvent{Index: 1, Status: MergeFailed, Err: errors.New("not mergeable")})
		model, _ = model.Update(MergeEvent{Index: 7, Status: MergeDone})

		view := model.View()
		require.Contains(t, view, "  ✓ a #1\n")
		require.Contains(t, view, "  ✕ b not mergeable\n")
		require.Contains(t, view, "  ○ c\n")
	})

	t.Run("finishes when the channel closes", func(t *testing.T) {
		t.Parallel()
		model, cmd := NewMergeModel([]string{"a"}, nil).Update(mergeFinishedMsg{})
		require.True(t, model.(MergeModel).Done())
		require.NotNil(t, cmd)
	})

	t.Run("event commands read from the channel", func(t *testing.T) {
		t.Parallel()
		updates := make(chan MergeEvent, 1)
		updates <- MergeEvent{Index: 0, Status: MergeRunning}
		require.Equal(t, MergeEvent{Index: 0, Status: MergeRunning}, waitForEvent(updates)())
		close(updates)
		require.Equal(t, mergeFinishedMsg{}, waitForEvent(updates)())
	})
}

func runMergeUIWithTimeout(t *testing.T, labels []string, work MergeWork) error {
	t.Helper()
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- runMergeUI(context.Background(), labels, work, strings.NewReader(""), &out)
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("merge UI did not finish")
		return nil
	}
}

func TestRunMergeUI(t *testing.T) {
	t.Parallel()

	t.Run("returns the work result", func(t *testing.T) {
		t.Parallel()
		err := runMergeUIWithTimeout(t, []string{"a", "b"}, func(_ context.Context, r MergeReporter) error {
			r.Started(0)
			r.Completed(0, "#1")
			r.Started(1)
			r.Failed(1, gqerrors.ErrReviewServiceUnavailable)
			return gqerrors.ErrReviewServiceUnavailable
		})
		require.ErrorIs(t, err, gqerrors.ErrReviewServiceUnavailable)
	})

	t.Run("completes without error", func(t *testing.T) {
		t.Parallel()
		err := runMergeUIWithTimeout(t, []string{"a"}, func(_ context.Context, r MergeReporter) error {
			r.Completed(0, "")
			return nil
		})
		require.NoError(t, err)
	})
}

func TestPlainMergeReporter(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	r := NewPlainMergeReporter(NewConsoleSplog(&out), []string{"a", "b", "c"})

	r.Started(0)
	r.Completed(0, "#1")
	r.Skipped(1, "Up to date")
	r.Failed(2, errors.New("conflicted"))

	require.Equal(t, "  a: ✓ #1\n  b: Up to date\n  c: ✕ conflicted\n", out.String())
}
