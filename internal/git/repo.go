package git

import (
	"context"
	"sync/atomic"

	gqerrors "gq.dev/gq/internal/errors"
)

// InteractivePort is implemented by ports that can hand the terminal to a command
type InteractivePort interface {
	RunInteractive(ctx context.Context, command string, args ...string) error
}

// Repo is a handle on one repository. All engine operations take a Repo
// instead of relying on the process working directory.
type Repo struct {
	port     Port
	verified atomic.Bool
}

// NewRepo creates a repository handle backed by port
func NewRepo(port Port) *Repo {
	return &Repo{port: port}
}

// Port returns the underlying port
func (r *Repo) Port() Port {
	return r.port
}

// AssertInRepo fails with ErrNotARepository unless the port targets a git work tree.
// A successful check is remembered for the lifetime of the handle.
func (r *Repo) AssertInRepo(ctx context.Context) error {
	if r.verified.Load() {
		return nil
	}
	out, err := r.port.Execute(ctx, "git", "rev-parse", "--is-inside-work-tree")
	if err != nil || out != "true" {
		return gqerrors.ErrNotARepository
	}
	r.verified.Store(true)
	return nil
}

// Git runs a git subcommand through the port
func (r *Repo) Git(ctx context.Context, args ...string) (string, error) {
	if err := r.AssertInRepo(ctx); err != nil {
		return "", err
	}
	return r.port.Execute(ctx, "git", args...)
}

// GitLines runs a git subcommand and splits its output into lines
func (r *Repo) GitLines(ctx context.Context, args ...string) ([]string, error) {
	out, err := r.Git(ctx, args...)
	if err != nil {
		return nil, err
	}
	return SplitLines(out), nil
}

// GitInteractive runs a git subcommand attached to the terminal when the port
// supports it, and through Execute otherwise.
func (r *Repo) GitInteractive(ctx context.Context, args ...string) error {
	if err := r.AssertInRepo(ctx); err != nil {
		return err
	}
	if ip, ok := r.port.(InteractivePort); ok {
		return ip.RunInteractive(ctx, "git", args...)
	}
	_, err := r.port.Execute(ctx, "git", args...)
	return err
}
