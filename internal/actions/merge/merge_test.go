package merge_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"gq.dev/gq/internal/actions/merge"
	gqerrors "gq.dev/gq/internal/errors"
	"gq.dev/gq/internal/review"
	"gq.dev/gq/testhelpers"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func stackPort() *testhelpers.FakePort {
	return testhelpers.NewStackPort(
		[]string{"main", "a", "b"},
		[]string{
			"main 1111111 [origin/main] init",
			"a 2222222 [main] a",
			"* b 3333333 [a] b",
		},
		"b")
}

func noSleep(context.Context, time.Duration) error { return nil }

func TestAction(t *testing.T) {
	t.Parallel()

	t.Run("merges the lineage root first", func(t *testing.T) {
		t.Parallel()
		ctx, out := testhelpers.NewTestContext(t, stackPort())
		gw := testhelpers.NewFakeGateway()
		ra := gw.Add(review.Review{Branch: "a", Base: "main", State: review.Approved})
		rb := gw.Add(review.Review{Branch: "b", Base: "a"})
		ctx.WithGateway(gw)

		require.NoError(t, merge.Action(ctx, merge.Options{Sleep: noSleep}))
		require.Equal(t, []string{ra.ID, rb.ID}, gw.Merges())
		require.Equal(t, "Merging stack\n"+
			"  main: Up to date\n"+
			"  a: ✓ "+ra.URL+"\n"+
			"  b: ✓ "+rb.URL+"\n", out.String())
	})

	t.Run("stops at the first failed merge", func(t *testing.T) {
		t.Parallel()
		ctx, out := testhelpers.NewTestContext(t, stackPort())
		gw := testhelpers.NewFakeGateway()
		ra := gw.Add(review.Review{Branch: "a", Base: "main"})
		gw.Add(review.Review{Branch: "b", Base: "a"})
		gw.MergeOutcome[ra.ID] = review.Conflicted
		ctx.WithGateway(gw)

		err := merge.Action(ctx, merge.Options{Sleep: noSleep})
		require.ErrorContains(t, err, "review 1 is Conflicted")
		require.Equal(t, []string{ra.ID}, gw.Merges())
		require.Contains(t, out.String(), "  a: ✕ review 1 is Conflicted\n")
		require.NotContains(t, out.String(), "  b:")
	})

	t.Run("review that never settles is undetermined", func(t *testing.T) {
		t.Parallel()
		ctx, _ := testhelpers.NewTestContext(t, stackPort())
		gw := testhelpers.NewFakeGateway()
		ra := gw.Add(review.Review{Branch: "a", Base: "main"})
		gw.MergeOutcome[ra.ID] = review.Pending
		ctx.WithGateway(gw)

		var waits []time.Duration
		err := merge.Action(ctx, merge.Options{Sleep: func(_ context.Context, d time.Duration) error {
			waits = append(waits, d)
			return nil
		}})
		require.ErrorIs(t, err, gqerrors.ErrMergeabilityUndetermined)
		require.Len(t, waits, review.MaxPollAttempts)
		require.Equal(t, review.BackoffSchedule[0], waits[0])
	})

	t.Run("without reviews everything is up to date", func(t *testing.T) {
		t.Parallel()
		ctx, out := testhelpers.NewTestContext(t, stackPort())
		ctx.WithGateway(review.None{})

		require.NoError(t, merge.Action(ctx, merge.Options{}))
		require.Equal(t, "Merging stack\n  main: Up to date\n  a: Up to date\n  b: Up to date\n", out.String())
	})

	t.Run("gateway errors stop the merge", func(t *testing.T) {
		t.Parallel()
		ctx, _ := testhelpers.NewTestContext(t, stackPort())
		gw := testhelpers.NewFakeGateway()
		gw.Err = gqerrors.ErrReviewServiceUnavailable
		ctx.WithGateway(gw)

		require.ErrorIs(t, merge.Action(ctx, merge.Options{}), gqerrors.ErrReviewServiceUnavailable)
	})
}
