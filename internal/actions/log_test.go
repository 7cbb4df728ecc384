package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gq.dev/gq/internal/actions"
	"gq.dev/gq/testhelpers"
)

func TestLogAction(t *testing.T) {
	t.Parallel()

	port := func() *testhelpers.FakePort {
		return chainPort("b").
			On("git log main..a --format=%H %s", "aaaaaaa222 second\naaaaaaa111 first").
			On("git log a..b --format=%H %s", "bbbbbbb111 tip")
	}

	t.Run("draws the stack tips first", func(t *testing.T) {
		t.Parallel()
		ctx, out := testhelpers.NewTestContext(t, port())

		require.NoError(t, actions.LogAction(ctx, actions.LogOptions{}))
		require.Equal(t, ""+
			"  ┌─b (current) - tip\n"+
			"  │ ║ bbbbbbb tip\n"+
			"┌─a - second\n"+
			"│ ║ aaaaaaa second\n"+
			"│ ║ aaaaaaa first\n"+
			"main\n", out.String())
	})

	t.Run("reverse without commits", func(t *testing.T) {
		t.Parallel()
		ctx, out := testhelpers.NewTestContext(t, port())

		require.NoError(t, actions.LogAction(ctx, actions.LogOptions{Reverse: true, NoCommits: true}))
		require.Equal(t, "main\n└─a - second\n  └─b (current) - tip\n", out.String())
	})

	t.Run("log never mutates the repository", func(t *testing.T) {
		t.Parallel()
		p := port()
		ctx, _ := testhelpers.NewTestContext(t, p)

		require.NoError(t, actions.LogAction(ctx, actions.LogOptions{}))
		require.Empty(t, p.MutatingCalls())
	})
}
