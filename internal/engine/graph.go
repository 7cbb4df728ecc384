package engine

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"gq.dev/gq/internal/git"
)

// branchLineRegex matches one line of `git branch -vv`:
// `[*+] <name> <sha> [(<worktree path>)] [<upstream>[: ahead/behind]] <subject>`
var branchLineRegex = regexp.MustCompile(`^\s*[*+]?\s*(\S+)\s+([0-9a-f]{4,})(?:\s+\([^)]*\))?(?:\s+\[([^\]]*)\])?(?:\s+(.*))?$`)

// Logger receives debug output from the engine
type Logger interface {
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Graph reads branch lineage from a repository
type Graph struct {
	repo *git.Repo
	log  Logger
}

// NewGraph creates a Graph over repo. log may be nil.
func NewGraph(repo *git.Repo, log Logger) *Graph {
	if log == nil {
		log = nopLogger{}
	}
	return &Graph{repo: repo, log: log}
}

// Repo returns the repository handle the graph reads from
func (g *Graph) Repo() *git.Repo {
	return g.repo
}

// Branches returns all local branch names
func (g *Graph) Branches(ctx context.Context) ([]string, error) {
	return g.repo.Branches(ctx)
}

// Parents maps each branch with a tracked upstream to that upstream's name.
// A bracket in the verbose listing is only trusted when the branch's
// configured upstream agrees, so a subject such as "[WIP] ..." on a branch
// without one is not read as a parent. An empty upstream listing carries no
// information and leaves the verbose parse as is.
func (g *Graph) Parents(ctx context.Context) (map[string]string, error) {
	lines, err := g.repo.VerboseBranches(ctx)
	if err != nil {
		return nil, err
	}
	parents := ParseParents(lines, g.log)

	upstreams, err := g.repo.Upstreams(ctx)
	if err != nil {
		return nil, err
	}
	if len(upstreams) == 0 {
		return parents, nil
	}
	for name, parent := range parents {
		if configured, ok := upstreams[name]; ok && configured != parent {
			g.log.Debug("ignoring [%s] on %s: configured upstream is %q", parent, name, configured)
			delete(parents, name)
		}
	}
	return parents, nil
}

// ParseParents parses `git branch -vv` output. Lines that do not look like a
// branch entry are skipped; lines without an upstream produce no entry.
func ParseParents(lines []string, log Logger) map[string]string {
	if log == nil {
		log = nopLogger{}
	}
	parents := make(map[string]string)
	for _, line := range lines {
		name, upstream, ok := parseBranchLine(line)
		if !ok {
			log.Debug("skipping unrecognised branch line: %q", line)
			continue
		}
		if upstream != "" {
			parents[name] = upstream
		}
	}
	return parents
}

func parseBranchLine(line string) (name, upstream string, ok bool) {
	m := branchLineRegex.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	name = m[1]
	if strings.HasPrefix(name, "(") {
		// detached HEAD or an in-progress rebase
		return "", "", false
	}
	upstream = m[3]
	if i := strings.Index(upstream, ":"); i >= 0 {
		upstream = upstream[:i]
	}
	return name, strings.TrimSpace(upstream), true
}

// ChildrenOf returns the branches tracking name, sorted by name
func (g *Graph) ChildrenOf(ctx context.Context, name string) ([]string, error) {
	parents, err := g.Parents(ctx)
	if err != nil {
		return nil, err
	}
	return childrenFrom(parents, name), nil
}

func childrenFrom(parents map[string]string, name string) []string {
	var children []string
	for child, parent := range parents {
		if parent != "" && parent == name {
			children = append(children, child)
		}
	}
	sort.Strings(children)
	return children
}

// ParentOf returns name's tracked parent filtered by scope. A parent is
// remote when it is not a local branch.
func (g *Graph) ParentOf(ctx context.Context, name string, scope ParentScope) (string, bool, error) {
	parents, err := g.Parents(ctx)
	if err != nil {
		return "", false, err
	}
	parent, ok := parents[name]
	if !ok || parent == "" {
		return "", false, nil
	}
	if scope == ScopeAll {
		return parent, true, nil
	}

	branches, err := g.Branches(ctx)
	if err != nil {
		return "", false, err
	}
	local := contains(branches, parent)
	if (scope == ScopeLocal && !local) || (scope == ScopeRemote && local) {
		return "", false, nil
	}
	return parent, true, nil
}

// CommitDiff returns the commits on branch that are not on parent, newest first
func (g *Graph) CommitDiff(ctx context.Context, branch, parent string) ([]Commit, error) {
	lines, err := g.repo.Log(ctx, parent+".."+branch)
	if err != nil {
		return nil, err
	}
	return parseCommitLines(lines), nil
}

func parseCommitLines(lines []string) []Commit {
	commits := make([]Commit, 0, len(lines))
	for _, line := range lines {
		sha, title, _ := strings.Cut(line, " ")
		if sha == "" {
			continue
		}
		commits = append(commits, Commit{SHA: sha, Title: title})
	}
	return commits
}

func contains(items []string, item string) bool {
	for _, s := range items {
		if s == item {
			return true
		}
	}
	return false
}
