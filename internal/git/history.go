package git

import (
	"context"
	"strings"
)

// LogFormat is the format used for commit listings: full sha, space, subject
const LogFormat = "--format=%H %s"

// Log returns `<sha> <subject>` lines for revisions, newest first
func (r *Repo) Log(ctx context.Context, revisions string) ([]string, error) {
	return r.GitLines(ctx, "log", revisions, LogFormat)
}

// PullRebase pulls the current branch's upstream with rebase semantics
func (r *Repo) PullRebase(ctx context.Context) error {
	_, err := r.Git(ctx, "pull", "--rebase")
	return err
}

// Rebase rebases the current branch onto onto
func (r *Repo) Rebase(ctx context.Context, onto string) error {
	_, err := r.Git(ctx, "rebase", onto)
	return err
}

// RebaseAbort aborts an in-progress rebase. It succeeds when no rebase was in progress.
func (r *Repo) RebaseAbort(ctx context.Context) error {
	_, err := r.Git(ctx, "rebase", "--abort")
	if err != nil && isNothingInProgress(err) {
		return nil
	}
	return err
}

// CherryPick applies a single commit onto the current branch
func (r *Repo) CherryPick(ctx context.Context, sha string) error {
	_, err := r.Git(ctx, "cherry-pick", sha)
	return err
}

// CherryPickAbort aborts an in-progress cherry-pick. It succeeds when none was in progress.
func (r *Repo) CherryPickAbort(ctx context.Context) error {
	_, err := r.Git(ctx, "cherry-pick", "--abort")
	if err != nil && isNothingInProgress(err) {
		return nil
	}
	return err
}

// Push pushes branch to remote without touching its tracked upstream
func (r *Repo) Push(ctx context.Context, remote, branch string, force bool) error {
	args := []string{"push"}
	if force {
		args = append(args, "--force-with-lease")
	}
	args = append(args, remote, branch)
	_, err := r.Git(ctx, args...)
	return err
}

func isNothingInProgress(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no rebase in progress") ||
		strings.Contains(msg, "no cherry-pick") ||
		strings.Contains(msg, "no cherry pick")
}
