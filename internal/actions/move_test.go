package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gq.dev/gq/internal/actions"
	"gq.dev/gq/internal/errors"
	"gq.dev/gq/testhelpers"
)

// forkPort is main <- a <- {b, c}
func forkPort(current string) *testhelpers.FakePort {
	return testhelpers.NewStackPort(
		[]string{"main", "a", "b", "c"},
		[]string{
			"main 1111111 [origin/main] init",
			"a 2222222 [main] a",
			"b 3333333 [a] b",
			"c 4444444 [a] c",
		},
		current).
		On("git status", "On branch "+current)
}

func TestMoveAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		port      *testhelpers.FakePort
		direction actions.Direction
		answers   []any
		wantCalls []string
		wantOut   string
	}{
		{
			name:      "up follows the only child",
			port:      chainPort("a"),
			direction: actions.DirectionUp,
			wantCalls: []string{"git switch b"},
			wantOut:   "Checked out branch: b\nOn branch a\n",
		},
		{
			name:      "up at a tip stays put",
			port:      chainPort("b"),
			direction: actions.DirectionUp,
			wantOut:   "Already at the top of the stack.\n",
		},
		{
			name:      "up at a fork asks which child",
			port:      forkPort("a"),
			direction: actions.DirectionUp,
			answers:   []any{1},
			wantCalls: []string{"git switch c"},
			wantOut:   "Checked out branch: c\nOn branch a\n",
		},
		{
			name:      "down moves to the local parent",
			port:      chainPort("b"),
			direction: actions.DirectionDown,
			wantCalls: []string{"git switch a"},
			wantOut:   "Checked out branch: a\nOn branch b\n",
		},
		{
			name:      "down at the root stays put",
			port:      chainPort("main"),
			direction: actions.DirectionDown,
			wantOut:   "Already at the bottom of the stack.\n",
		},
		{
			name:      "bottom walks to the root",
			port:      chainPort("b"),
			direction: actions.DirectionBottom,
			wantCalls: []string{"git switch main"},
			wantOut:   "⮑  a\n⮑  main\nChecked out branch: main\nOn branch b\n",
		},
		{
			name:      "top walks to the tip",
			port:      chainPort("main"),
			direction: actions.DirectionTop,
			wantCalls: []string{"git switch b"},
			wantOut:   "⮑  a\n⮑  b\nChecked out branch: b\nOn branch main\n",
		},
		{
			name:      "top asks at every fork",
			port:      forkPort("main"),
			direction: actions.DirectionTop,
			answers:   []any{0},
			wantCalls: []string{"git switch b"},
			wantOut:   "⮑  a\n⮑  b\nChecked out branch: b\nOn branch main\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, out := testhelpers.NewTestContext(t, tt.port)
			prompter := testhelpers.NewScriptedPrompter(tt.answers...)
			ctx.WithPrompter(prompter)

			require.NoError(t, actions.MoveAction(ctx, tt.direction))
			require.Equal(t, tt.wantCalls, tt.port.MutatingCalls())
			require.Equal(t, tt.wantOut, out.String())
			require.Zero(t, prompter.Remaining())
		})
	}

	t.Run("cancelling at a fork stays put", func(t *testing.T) {
		t.Parallel()
		port := forkPort("a")
		ctx, _ := testhelpers.NewTestContext(t, port)
		ctx.WithPrompter(testhelpers.NewScriptedPrompter(errors.ErrAmbiguousSelection))

		require.ErrorIs(t, actions.MoveAction(ctx, actions.DirectionUp), errors.ErrAmbiguousSelection)
		require.Empty(t, port.MutatingCalls())
	})

	t.Run("detached head has nowhere to move", func(t *testing.T) {
		t.Parallel()
		ctx, _ := testhelpers.NewTestContext(t, chainPort("HEAD"))
		require.ErrorIs(t, actions.MoveAction(ctx, actions.DirectionDown), errors.ErrNotOnBranch)
	})
}
