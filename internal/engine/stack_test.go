package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gq.dev/gq/internal/engine"
	"gq.dev/gq/internal/git"
)

func stackIDs(s *engine.Stack) map[string]int {
	ids := make(map[string]int, len(s.Branches))
	for name, b := range s.Branches {
		ids[name] = b.StackID
	}
	return ids
}

func depths(s *engine.Stack) map[string]int {
	out := make(map[string]int, len(s.Branches))
	for name, b := range s.Branches {
		out[name] = b.Depth
	}
	return out
}

func names(branches []*engine.Branch) []string {
	out := make([]string, len(branches))
	for i, b := range branches {
		out[i] = b.Name
	}
	return out
}

func TestBuildStack(t *testing.T) {
	t.Parallel()

	t.Run("linear chain shares stack id 0", func(t *testing.T) {
		t.Parallel()
		s := engine.BuildStack(
			[]string{"root", "a", "b", "c"},
			map[string]string{"a": "root", "b": "a", "c": "b"},
			"c", nil)

		require.Equal(t, []string{"root"}, s.Roots)
		require.Equal(t, map[string]int{"root": 0, "a": 0, "b": 0, "c": 0}, stackIDs(s))
		require.Equal(t, map[string]int{"root": 0, "a": 1, "b": 2, "c": 3}, depths(s))
		require.Equal(t, []string{"root", "a", "b", "c"}, names(s.Ordered()))
		require.Equal(t, []string{"root", "a", "b", "c"}, s.Lineage("c"))
	})

	t.Run("divergent sibling gets a negative id", func(t *testing.T) {
		t.Parallel()
		s := engine.BuildStack(
			[]string{"root", "a", "b"},
			map[string]string{"a": "root", "b": "root"},
			"a", nil)

		ids := stackIDs(s)
		require.Equal(t, 0, ids["root"])
		require.Equal(t, 0, ids["a"])
		require.Less(t, ids["b"], 0)
		require.Equal(t, []string{"a", "b"}, s.Branch("root").Children)
	})

	t.Run("later divergences get lower ids", func(t *testing.T) {
		t.Parallel()
		// root -> {a, b}; b -> {b1, b2}
		s := engine.BuildStack(
			[]string{"root", "a", "b", "b1", "b2"},
			map[string]string{"a": "root", "b": "root", "b1": "b", "b2": "b"},
			"a", nil)

		ids := stackIDs(s)
		require.Equal(t, 0, ids["a"])
		require.Less(t, ids["b"], 0)
		require.Less(t, ids["b1"], ids["b"])
		require.Less(t, ids["b2"], ids["b1"])
		require.NotEqual(t, ids["b1"], ids["b2"])
	})

	t.Run("assignment is idempotent", func(t *testing.T) {
		t.Parallel()
		s := engine.BuildStack(
			[]string{"main", "x", "y", "z", "w", "other"},
			map[string]string{"x": "main", "y": "main", "z": "y", "w": "y", "main": "origin/main"},
			"z", nil)

		first := stackIDs(s)
		s.AssignStackIDs()
		require.Equal(t, first, stackIDs(s))
		s.AssignStackIDs()
		require.Equal(t, first, stackIDs(s))
	})

	t.Run("pinned ancestors follow remote-free chain only", func(t *testing.T) {
		t.Parallel()
		s := engine.BuildStack(
			[]string{"main", "a"},
			map[string]string{"main": "origin/main", "a": "main"},
			"a", nil)

		require.Equal(t, []string{"main"}, s.Roots)
		require.True(t, s.Branch("main").IsRoot())
		require.Equal(t, "origin/main", s.Branch("main").Parent)
		require.Equal(t, map[string]int{"main": 0, "a": 0}, stackIDs(s))
	})

	t.Run("unrelated roots never share the current stack id", func(t *testing.T) {
		t.Parallel()
		s := engine.BuildStack(
			[]string{"main", "a", "experiment", "e1"},
			map[string]string{"a": "main", "e1": "experiment"},
			"a", nil)

		ids := stackIDs(s)
		require.Equal(t, 0, ids["main"])
		require.Less(t, ids["experiment"], 0)
		require.Equal(t, ids["experiment"], ids["e1"])
		require.Equal(t, []string{"main", "experiment"}, s.Roots)
		require.Equal(t, []string{"main", "a", "experiment", "e1"}, names(s.Ordered()))
	})

	t.Run("upstream cycles are cut into a root", func(t *testing.T) {
		t.Parallel()
		s := engine.BuildStack(
			[]string{"a", "b"},
			map[string]string{"a": "b", "b": "a"},
			"b", nil)

		require.Len(t, s.Roots, 1)
		root := s.Branch(s.Roots[0])
		require.Len(t, root.Children, 1)
		require.Equal(t, 1, s.Branch(root.Children[0]).Depth)
	})
}

func TestGraphLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	port := newStackPort(
		[]string{"main", "a", "b"},
		[]string{
			"main 1111111 [origin/main] init",
			"a 2222222 [main: ahead 2] a",
			"* b 3333333 [a] b",
		},
		"b").
		On("git log origin/main..main --format=%H %s", "").
		On("git log main..a --format=%H %s", "a2a2a2a2a2 a two\na1a1a1a1a1 a one").
		On("git log a..b --format=%H %s", "b1b1b1b1b1 b one")

	graph := engine.NewGraph(git.NewRepo(port), nil)
	s, err := graph.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "b", s.Current)
	require.Equal(t, []string{"main", "a", "b"}, names(s.Ordered()))
	require.Empty(t, s.Branch("a").Commits)

	require.NoError(t, s.PopulateCommits(ctx, graph))
	require.Equal(t, []engine.Commit{
		{SHA: "a1a1a1a1a1", Title: "a one"},
		{SHA: "a2a2a2a2a2", Title: "a two"},
	}, s.Branch("a").Commits)
	newest, ok := s.Branch("a").NewestCommit()
	require.True(t, ok)
	require.Equal(t, "a two", newest.Title)
	require.Empty(t, s.Branch("main").Commits)

	t.Run("gone remote upstream is tolerated", func(t *testing.T) {
		port := newStackPort(
			[]string{"old"},
			[]string{"* old 1111111 [origin/old: gone] stale"},
			"old").
			Fail("git log origin/old..old --format=%H %s", "fatal: ambiguous argument")
		graph := engine.NewGraph(git.NewRepo(port), nil)
		s, err := graph.Load(ctx)
		require.NoError(t, err)
		require.NoError(t, s.PopulateCommits(ctx, graph))
		require.Empty(t, s.Branch("old").Commits)
	})
}
