package git

import (
	"context"
	"strings"
)

// CurrentBranch returns the checked-out branch name ("HEAD" when detached)
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	return r.Git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// Branches returns every local branch name
func (r *Repo) Branches(ctx context.Context) ([]string, error) {
	return r.GitLines(ctx, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
}

// Upstreams maps every local branch to its configured upstream's short
// name, "" when it has none
func (r *Repo) Upstreams(ctx context.Context) (map[string]string, error) {
	lines, err := r.GitLines(ctx, "for-each-ref", "--format=%(refname:short) %(upstream:short)", "refs/heads/")
	if err != nil {
		return nil, err
	}
	upstreams := make(map[string]string, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			upstreams[fields[0]] = ""
		case 2:
			upstreams[fields[0]] = fields[1]
		}
	}
	return upstreams, nil
}

// VerboseBranches returns the raw `git branch -vv` listing, one line per branch
func (r *Repo) VerboseBranches(ctx context.Context) ([]string, error) {
	return r.GitLines(ctx, "branch", "-vv")
}

// Switch checks out an existing branch
func (r *Repo) Switch(ctx context.Context, branch string) error {
	_, err := r.Git(ctx, "switch", branch)
	return err
}

// CreateTrackingBranch creates name from parent, records parent as its
// upstream, and checks it out.
func (r *Repo) CreateTrackingBranch(ctx context.Context, name, parent string) error {
	_, err := r.Git(ctx, "checkout", "-b", name, "--track", parent)
	return err
}

// SetUpstream points branch's tracked upstream at parent
func (r *Repo) SetUpstream(ctx context.Context, branch, parent string) error {
	_, err := r.Git(ctx, "branch", "--set-upstream-to="+parent, branch)
	return err
}

// DeleteBranch deletes a local branch. Without force git refuses to delete
// unmerged work.
func (r *Repo) DeleteBranch(ctx context.Context, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := r.Git(ctx, "branch", flag, branch)
	return err
}

// Status returns `git status` output
func (r *Repo) Status(ctx context.Context) (string, error) {
	return r.Git(ctx, "status")
}

// Remotes returns the configured remote names
func (r *Repo) Remotes(ctx context.Context) ([]string, error) {
	return r.GitLines(ctx, "remote")
}
