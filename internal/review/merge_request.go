package review

import (
	"context"
	"fmt"
	"time"

	gqerrors "gq.dev/gq/internal/errors"
)

// MergeState is the state of a merge from the merge request's point of view
type MergeState int

const (
	MergePending MergeState = iota
	MergeMerged
	MergeFailed
)

func (s MergeState) String() string {
	switch s {
	case MergePending:
		return "pending"
	case MergeMerged:
		return "merged"
	case MergeFailed:
		return "failed"
	default:
		return fmt.Sprintf("MergeState(%d)", int(s))
	}
}

// MergeRequest tracks a request to merge a review
type MergeRequest struct {
	State  MergeState
	Review Review
}

// NewMergeRequest wraps r with the merge state derived from its review state
func NewMergeRequest(r Review) *MergeRequest {
	return &MergeRequest{State: MergeStateFor(r.State), Review: r}
}

// MergeStateFor maps a review state onto a merge state. Reviews that may
// still merge are pending; anything unmergeable has failed.
func MergeStateFor(s State) MergeState {
	switch s {
	case Pending, Approved:
		return MergePending
	case Merged:
		return MergeMerged
	default:
		return MergeFailed
	}
}

// Refresh re-reads the review from gw and updates the merge state
func (m *MergeRequest) Refresh(ctx context.Context, gw Gateway) error {
	r, err := gw.Review(ctx, m.Review.ID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("review %s no longer exists", m.Review.ID)
	}
	m.Review = *r
	m.State = MergeStateFor(r.State)
	return nil
}

// SleepFunc waits for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// BackoffSchedule is the wait between polls of a review service. It wraps
// around once exhausted.
var BackoffSchedule = []time.Duration{
	1 * time.Second,
	5 * time.Second,
	5 * time.Second,
	5 * time.Second,
	5 * time.Second,
	10 * time.Second,
	10 * time.Second,
	10 * time.Second,
	30 * time.Second,
	60 * time.Second,
}

// MaxPollAttempts bounds every poll of a review service
const MaxPollAttempts = 15

// Backoff returns the wait before poll attempt n (zero based)
func Backoff(n int) time.Duration {
	return BackoffSchedule[n%len(BackoffSchedule)]
}

// AwaitMerge refreshes mr until it leaves MergePending, sleeping per the
// backoff schedule between refreshes
func AwaitMerge(ctx context.Context, gw Gateway, mr *MergeRequest, sleep SleepFunc) (*MergeRequest, error) {
	if sleep == nil {
		sleep = Sleep
	}
	for attempt := 0; mr.State == MergePending; attempt++ {
		if attempt >= MaxPollAttempts {
			return mr, gqerrors.NewMergeabilityUndeterminedError(mr.Review.ID)
		}
		if err := sleep(ctx, Backoff(attempt)); err != nil {
			return mr, err
		}
		if err := mr.Refresh(ctx, gw); err != nil {
			return mr, err
		}
	}
	return mr, nil
}
