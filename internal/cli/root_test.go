package cli

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestRootCommands(t *testing.T) {
	t.Parallel()
	root := NewRootCmd("1.2.3", "abc", "today")

	aliases := map[string][]string{
		"init":    nil,
		"log":     {"l"},
		"up":      {"bu"},
		"down":    {"bd"},
		"top":     {"bt"},
		"bottom":  {"bb"},
		"switch":  {"bco"},
		"create":  {"bc"},
		"split":   {"sp"},
		"commit":  {"cc"},
		"sync":    nil,
		"submit":  {"s"},
		"merge":   nil,
		"reviews": {"rv"},
	}
	for name, want := range aliases {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		require.Equal(t, name, cmd.Name())
		if want == nil {
			require.Empty(t, cmd.Aliases, name)
		} else {
			require.Equal(t, want, cmd.Aliases, name)
		}
		require.True(t, cmd.SilenceUsage, name)
	}
	require.Len(t, root.Commands(), len(aliases))

	t.Run("aliases resolve", func(t *testing.T) {
		t.Parallel()
		cmd, _, err := NewRootCmd("", "", "").Find([]string{"bu"})
		require.NoError(t, err)
		require.Equal(t, "up", cmd.Name())
	})

	t.Run("quiet is persistent", func(t *testing.T) {
		t.Parallel()
		flag := NewRootCmd("", "", "").PersistentFlags().ShorthandLookup("q")
		require.NotNil(t, flag)
		require.Equal(t, "quiet", flag.Name)
	})

	t.Run("version carries build info", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "1.2.3 (commit abc, built today)", root.Version)
	})
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()
	root := NewRootCmd("", "", "")

	flags := map[string][]string{
		"log":    {"reverse", "no-commits"},
		"sync":   {"no-delete"},
		"submit": {"dry-run"},
		"merge":  {"plain"},
		"init":   {"remote", "review-tool", "force"},
	}
	for name, want := range flags {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		for _, flag := range want {
			require.NotNil(t, cmd.Flags().Lookup(flag), "%s --%s", name, flag)
		}
	}

	log, _, err := root.Find([]string{"log"})
	require.NoError(t, err)
	require.Equal(t, "reverse", log.Flags().ShorthandLookup("r").Name)

	commit, _, err := root.Find([]string{"commit"})
	require.NoError(t, err)
	require.True(t, commit.DisableFlagParsing)
}

func TestHandlePassthrough(t *testing.T) {
	t.Parallel()

	require.False(t, HandlePassthrough([]string{"gq"}))
	for _, own := range []string{"log", "merge", "switch", "commit", "sync", "create"} {
		require.False(t, HandlePassthrough([]string{"gq", own}), own)
	}
	require.Contains(t, gitCommandAllowlist, "status")
	require.Contains(t, gitCommandAllowlist, "rebase")
}
