package submit_test

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"gq.dev/gq/internal/actions/submit"
	"gq.dev/gq/internal/engine"
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
		[]string{"main", "a", "b", "side"},
		[]string{
			"main 1111111 [origin/main] init",
			"a 2222222 [main] a2",
			"* b 3333333 [a] b1",
			"side 4444444 [main] s",
		},
		"b").
		On("git log main..a --format=%H %s", "a2a2a2a2a2 second on a\na1a1a1a1a1 first on a").
		On("git log a..b --format=%H %s", "b1b1b1b1b1 only on b")
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	title, body := submit.Describe([]engine.Commit{
		{SHA: "a1a1a1a1a1", Title: "first"},
		{SHA: "a2a2a2a2a2", Title: "second"},
	})
	require.Equal(t, "first", title)
	require.Equal(t, "- a1a1a1a first\n- a2a2a2a second", body)

	title, body = submit.Describe(nil)
	require.Empty(t, title)
	require.Empty(t, body)
}

func TestAction(t *testing.T) {
	t.Parallel()

	t.Run("pushes the lineage root first and opens missing reviews", func(t *testing.T) {
		t.Parallel()
		port := stackPort()
		ctx, out := testhelpers.NewTestContext(t, port)
		gw := testhelpers.NewFakeGateway()
		existing := gw.Add(review.Review{Branch: "b", Base: "a"})
		ctx.WithGateway(gw)

		require.NoError(t, submit.Action(ctx, submit.Options{}))

		require.Equal(t, []string{
			"git push --force-with-lease origin a",
			"git push --force-with-lease origin b",
		}, port.MutatingCalls())
		require.Equal(t, []testhelpers.FakeCreate{{
			Branch: "a",
			Parent: "main",
			Title:  "first on a",
			Body:   "- a1a1a1a first on a\n- a2a2a2a second on a",
		}}, gw.Creates())
		require.Contains(t, out.String(), "  b: ✓ updated "+existing.URL+"\n")
		require.Contains(t, out.String(), "  a: ✓ created https://reviews.example/2\n")
	})

	t.Run("dry run touches nothing", func(t *testing.T) {
		t.Parallel()
		port := stackPort()
		ctx, out := testhelpers.NewTestContext(t, port)
		gw := testhelpers.NewFakeGateway()
		ctx.WithGateway(gw)

		require.NoError(t, submit.Action(ctx, submit.Options{DryRun: true}))
		require.Empty(t, port.MutatingCalls())
		require.Empty(t, gw.Creates())
		require.Equal(t, "Would submit:\n  a → main first on a\n  b → a only on b\n", out.String())
	})

	t.Run("failed push stops the submit", func(t *testing.T) {
		t.Parallel()
		port := stackPort().Fail("git push --force-with-lease origin a", "rejected")
		ctx, _ := testhelpers.NewTestContext(t, port)
		gw := testhelpers.NewFakeGateway()
		ctx.WithGateway(gw)

		err := submit.Action(ctx, submit.Options{})
		require.ErrorIs(t, err, gqerrors.ErrCommandFailed)
		require.Empty(t, gw.Creates())
		require.NotContains(t, port.MutatingCalls(), "git push --force-with-lease origin b")
	})

	t.Run("without a review service the push still happens", func(t *testing.T) {
		t.Parallel()
		port := stackPort()
		ctx, _ := testhelpers.NewTestContext(t, port)
		ctx.WithGateway(review.None{})

		err := submit.Action(ctx, submit.Options{})
		require.ErrorIs(t, err, gqerrors.ErrReviewServiceUnavailable)
		require.Equal(t, []string{"git push --force-with-lease origin a"}, port.MutatingCalls())
	})

	t.Run("branch rooted on a remote branch reviews against its name", func(t *testing.T) {
		t.Parallel()
		port := testhelpers.NewStackPort(
			[]string{"main", "feat"},
			[]string{
				"main 1111111 [origin/main] init",
				"* feat 5555555 [origin/main: ahead 1] feature work",
			},
			"feat").
			On("git log origin/main..feat --format=%H %s", "f1f1f1f1f1 feature work")
		ctx, _ := testhelpers.NewTestContext(t, port)
		gw := testhelpers.NewFakeGateway()
		ctx.WithGateway(gw)

		require.NoError(t, submit.Action(ctx, submit.Options{}))
		require.Equal(t, []string{"git push --force-with-lease origin feat"}, port.MutatingCalls())
		require.Equal(t, []testhelpers.FakeCreate{{
			Branch: "feat",
			Parent: "main",
			Title:  "feature work",
			Body:   "- f1f1f1f feature work",
		}}, gw.Creates())
	})

	t.Run("root branch has nothing to submit", func(t *testing.T) {
		t.Parallel()
		port := stackPort().On("git rev-parse --abbrev-ref HEAD", "main")
		ctx, out := testhelpers.NewTestContext(t, port)
		ctx.WithGateway(testhelpers.NewFakeGateway())

		require.NoError(t, submit.Action(ctx, submit.Options{}))
		require.Empty(t, port.MutatingCalls())
		require.Contains(t, out.String(), "nothing to submit")
	})
}
