package tui

import (
	"fmt"
	"sync"
)

// MergeStatus is the progress of one branch in a stack merge
type MergeStatus int

const (
	MergeQueued MergeStatus = iota
	MergeRunning
	MergeDone
	MergeFailed
	MergeSkipped
)

// MergeEvent reports a status change for the branch at Index
type MergeEvent struct {
	Index  int
	Status MergeStatus
	Detail string
	Err    error
}

// MergeReporter receives merge progress from the merge workflow
type MergeReporter interface {
	Started(index int)
	Completed(index int, detail string)
	Failed(index int, err error)
	Skipped(index int, detail string)
}

// ChannelMergeReporter forwards progress to a channel consumed by the merge UI
type ChannelMergeReporter struct {
	updates chan MergeEvent
	once    sync.Once
}

var _ MergeReporter = (*ChannelMergeReporter)(nil)

// NewChannelMergeReporter creates a new channel-based progress reporter
func NewChannelMergeReporter() *ChannelMergeReporter {
	return &ChannelMergeReporter{updates: make(chan MergeEvent, 100)}
}

// Updates returns the channel for receiving updates
func (r *ChannelMergeReporter) Updates() <-chan MergeEvent {
	return r.updates
}

// Close closes the update channel (safe to call multiple times)
func (r *ChannelMergeReporter) Close() {
	r.once.Do(func() {
		close(r.updates)
	})
}

func (r *ChannelMergeReporter) Started(index int) {
	r.updates <- MergeEvent{Index: index, Status: MergeRunning}
}

func (r *ChannelMergeReporter) Completed(index int, detail string) {
	r.updates <- MergeEvent{Index: index, Status: MergeDone, Detail: detail}
}

func (r *ChannelMergeReporter) Failed(index int, err error) {
	r.updates <- MergeEvent{Index: index, Status: MergeFailed, Err: err}
}

func (r *ChannelMergeReporter) Skipped(index int, detail string) {
	r.updates <- MergeEvent{Index: index, Status: MergeSkipped, Detail: detail}
}

// PlainMergeReporter prints one line per finished branch, for terminals
// that cannot host the interactive UI
type PlainMergeReporter struct {
	splog  *Splog
	labels []string
}

var _ MergeReporter = (*PlainMergeReporter)(nil)

// NewPlainMergeReporter creates a reporter that writes through splog
func NewPlainMergeReporter(splog *Splog, labels []string) *PlainMergeReporter {
	return &PlainMergeReporter{splog: splog, labels: labels}
}

func (r *PlainMergeReporter) label(index int) string {
	if index >= 0 && index < len(r.labels) {
		return r.labels[index]
	}
	return fmt.Sprintf("#%d", index)
}

func (r *PlainMergeReporter) Started(index int) {
	r.splog.Debug("merging %s", r.label(index))
}

func (r *PlainMergeReporter) Completed(index int, detail string) {
	line := fmt.Sprintf("  %s: %s", ColorBranch(r.label(index)), Check())
	if detail != "" {
		line += " " + ColorDim(detail)
	}
	r.splog.Info(line)
}

func (r *PlainMergeReporter) Failed(index int, err error) {
	line := fmt.Sprintf("  %s: %s", ColorBranch(r.label(index)), Cross())
	if err != nil {
		line += " " + ColorRed(err.Error())
	}
	r.splog.Info(line)
}

func (r *PlainMergeReporter) Skipped(index int, detail string) {
	r.splog.Info("  %s: %s", ColorBranch(r.label(index)), ColorYellow(detail))
}
