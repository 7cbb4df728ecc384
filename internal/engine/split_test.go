package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	gqerrors "gq.dev/gq/internal/errors"
	"gq.dev/gq/internal/engine"
	"gq.dev/gq/internal/git"
	"gq.dev/gq/testhelpers"
)

func commitsNamed(shas ...string) []engine.Commit {
	out := make([]engine.Commit, len(shas))
	for i, sha := range shas {
		out[i] = engine.Commit{SHA: sha, Title: "title " + sha}
	}
	return out
}

func groupSHAs(groups []engine.SplitGroup) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		for _, c := range g {
			out[i] = append(out[i], c.SHA)
		}
	}
	return out
}

func TestGroupCommits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []string
		want   [][]string
	}{
		{
			name: "no split points keeps one group oldest first",
			want: [][]string{{"c1", "c2", "c3", "c4", "c5"}},
		},
		{
			name:   "single split point",
			points: []string{"c3"},
			want:   [][]string{{"c1", "c2"}, {"c3", "c4", "c5"}},
		},
		{
			name:   "newest commit as a split point",
			points: []string{"c5"},
			want:   [][]string{{"c1", "c2", "c3", "c4"}, {"c5"}},
		},
		{
			name:   "oldest commit is already a boundary",
			points: []string{"c1"},
			want:   [][]string{{"c1", "c2", "c3", "c4", "c5"}},
		},
		{
			name:   "every commit its own branch",
			points: []string{"c2", "c3", "c4", "c5"},
			want:   [][]string{{"c1"}, {"c2"}, {"c3"}, {"c4"}, {"c5"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			points := make(map[string]bool)
			for _, p := range tt.points {
				points[p] = true
			}
			groups := engine.GroupCommits(commitsNamed("c5", "c4", "c3", "c2", "c1"), points)
			require.Equal(t, tt.want, groupSHAs(groups))
		})
	}

	t.Run("no commits yields no groups", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, engine.GroupCommits(nil, nil))
	})
}

func TestSplit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	splitPort := func() *testhelpers.FakePort {
		return newStackPort(
			[]string{"main", "feat", "feat-1", "child"},
			[]string{
				"main 1111111 init",
				"* feat 2222222 [main] three",
				"feat-1 5555555 unrelated",
				"child 3333333 [feat] child",
			},
			"feat").
			On("git log main..feat --format=%H %s", "c3 three\nc2 two\nc1 one")
	}

	t.Run("materializes groups root first and re-parents children", func(t *testing.T) {
		t.Parallel()
		port := splitPort()
		e := engine.New(git.NewRepo(port), nil)

		created, err := e.Split(ctx, "feat", map[string]bool{"c3": true})
		require.NoError(t, err)
		require.Equal(t, []string{"feat-2", "feat-3"}, created)
		require.Equal(t, []string{
			"git checkout -b feat-2 --track main",
			"git cherry-pick c1",
			"git cherry-pick c2",
			"git checkout -b feat-3 --track feat-2",
			"git cherry-pick c3",
			"git branch --set-upstream-to=feat-3 child",
			"git branch -D feat",
			"git switch child",
			"git rebase feat-3",
			"git switch feat-3",
		}, port.MutatingCalls())
	})

	t.Run("failed cherry-pick is aborted", func(t *testing.T) {
		t.Parallel()
		port := splitPort().Fail("git cherry-pick c2", "error: could not apply c2")
		e := engine.New(git.NewRepo(port), nil)

		created, err := e.Split(ctx, "feat", nil)
		require.Error(t, err)
		require.Equal(t, []string{"feat-2"}, created)
		calls := port.MutatingCalls()
		require.Equal(t, "git cherry-pick --abort", calls[len(calls)-1])
		require.NotContains(t, calls, "git branch -D feat")
	})

	t.Run("root branch cannot be split", func(t *testing.T) {
		t.Parallel()
		e := engine.New(git.NewRepo(splitPort()), nil)
		_, err := e.Split(ctx, "main", nil)
		require.ErrorIs(t, err, gqerrors.ErrNoTrackedParent)
	})
}

func TestSplitIntegration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	repo := scene.Repo
	require.NoError(t, repo.CreateTrackingBranch("feat", "main"))
	for _, msg := range []string{"one", "two", "three"} {
		require.NoError(t, repo.CreateChangeAndCommit(msg, msg))
	}
	require.NoError(t, repo.CreateTrackingBranch("child", "feat"))
	require.NoError(t, repo.CreateChangeAndCommit("child", "child"))
	require.NoError(t, repo.CheckoutBranch("feat"))

	two, err := repo.GetRevision("feat~1")
	require.NoError(t, err)

	e := engine.New(git.NewRepo(git.NewCommandRunner(scene.Dir).WithEnv(repo.Env()...)), nil)
	created, err := e.Split(ctx, "feat", map[string]bool{two: true})
	require.NoError(t, err)
	require.Equal(t, []string{"feat-1", "feat-2"}, created)

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"main", "feat-1", "feat-2", "child"}, branches)

	require.Equal(t, "main", repo.Upstream("feat-1"))
	require.Equal(t, "feat-1", repo.Upstream("feat-2"))
	require.Equal(t, "feat-2", repo.Upstream("child"))

	subjects, err := repo.CommitSubjects("main..feat-1")
	require.NoError(t, err)
	require.Equal(t, []string{"one"}, subjects)
	subjects, err = repo.CommitSubjects("feat-1..feat-2")
	require.NoError(t, err)
	require.Equal(t, []string{"three", "two"}, subjects)
	subjects, err = repo.CommitSubjects("feat-2..child")
	require.NoError(t, err)
	require.Equal(t, []string{"child"}, subjects)

	current, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "feat-2", current)
}
