package cli

import (
	"errors"
	"os"
	"os/exec"
	"slices"
	"strings"

	"gq.dev/gq/internal/tui"
)

// gq defines its own merge, switch, commit and log, so those are not passed through
var gitCommandAllowlist = []string{
	"add",
	"am",
	"apply",
	"bisect",
	"blame",
	"checkout",
	"cherry-pick",
	"clean",
	"diff",
	"difftool",
	"fetch",
	"grep",
	"mv",
	"pull",
	"push",
	"rebase",
	"reflog",
	"remote",
	"reset",
	"restore",
	"revert",
	"rm",
	"show",
	"stash",
	"status",
	"tag",
}

// HandlePassthrough runs args[1:] through git when args[1] is an allowlisted
// git command, then exits with git's exit code. It returns false otherwise.
func HandlePassthrough(args []string) bool {
	if len(args) < 2 || !slices.Contains(gitCommandAllowlist, args[1]) {
		return false
	}

	gitArgs := args[1:]
	gitCmd := exec.Command("git", gitArgs...)
	gitCmd.Stdin = os.Stdin
	gitCmd.Stdout = os.Stdout
	gitCmd.Stderr = os.Stderr

	_, _ = os.Stderr.WriteString(tui.ColorDim("Passing command through to git...") + "\n")
	_, _ = os.Stderr.WriteString(tui.ColorDim(`Running: "git `+strings.Join(gitArgs, " ")+`"`) + "\n\n")

	if err := gitCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
	os.Exit(0)
	return true
}
