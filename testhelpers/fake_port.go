package testhelpers

import (
	"context"
	"strings"
	"sync"

	gqerrors "gq.dev/gq/internal/errors"
)

// FakePort is a scripted Repository Port. Responses are keyed by the full
// command line ("git branch -vv"). Unscripted commands succeed with empty
// output, except the work-tree check, which reports "true".
type FakePort struct {
	mu        sync.Mutex
	responses map[string][]string
	failures  map[string]string
	calls     []string
}

// NewFakePort creates an empty FakePort
func NewFakePort() *FakePort {
	return &FakePort{
		responses: make(map[string][]string),
		failures:  make(map[string]string),
	}
}

// On scripts the output for a command line. Several outputs are returned in
// order on successive calls; the last one repeats.
func (f *FakePort) On(commandLine string, outputs ...string) *FakePort {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[commandLine] = outputs
	return f
}

// Fail scripts a command line to fail with stderr
func (f *FakePort) Fail(commandLine, stderr string) *FakePort {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[commandLine] = stderr
	return f
}

// Clear removes any scripted output or failure for a command line
func (f *FakePort) Clear(commandLine string) *FakePort {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.responses, commandLine)
	delete(f.failures, commandLine)
	return f
}

// Execute implements git.Port
func (f *FakePort) Execute(_ context.Context, command string, args ...string) (string, error) {
	line := strings.TrimSpace(command + " " + strings.Join(args, " "))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, line)

	if stderr, ok := f.failures[line]; ok {
		return "", gqerrors.NewCommandError(command, args, stderr, gqerrors.ErrCommandFailed)
	}
	if outputs, ok := f.responses[line]; ok && len(outputs) > 0 {
		out := outputs[0]
		if len(outputs) > 1 {
			f.responses[line] = outputs[1:]
		}
		return out, nil
	}
	if line == "git rev-parse --is-inside-work-tree" {
		return "true", nil
	}
	return "", nil
}

// Calls returns every command line executed so far
func (f *FakePort) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// MutatingCalls returns executed command lines, skipping read-only queries
func (f *FakePort) MutatingCalls() []string {
	var out []string
	for _, call := range f.Calls() {
		if isReadOnly(call) {
			continue
		}
		out = append(out, call)
	}
	return out
}

func isReadOnly(line string) bool {
	for _, prefix := range []string{
		"git rev-parse",
		"git for-each-ref",
		"git branch -vv",
		"git log",
		"git remote",
		"git status",
	} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// NewStackPort scripts the reads Graph.Load performs: the local branch list,
// the `branch -vv` listing, the current branch and a single "origin" remote
func NewStackPort(branches []string, verbose []string, current string) *FakePort {
	return NewFakePort().
		On("git for-each-ref --format=%(refname:short) refs/heads/", strings.Join(branches, "\n")).
		On("git branch -vv", strings.Join(verbose, "\n")).
		On("git rev-parse --abbrev-ref HEAD", current).
		On("git remote", "origin")
}
