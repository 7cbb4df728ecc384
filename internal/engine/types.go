package engine

// Commit is a single commit read from history
type Commit struct {
	SHA   string
	Title string
}

// ShortSHA returns the first seven characters of the sha
func (c Commit) ShortSHA() string {
	if len(c.SHA) > 7 {
		return c.SHA[:7]
	}
	return c.SHA
}

// Branch is one node of the stack forest
type Branch struct {
	Name string
	// Parent is the tracked upstream, local or remote. Empty when untracked.
	Parent string
	// LocalParent reports whether Parent is itself a local branch.
	LocalParent bool
	// Children holds the local branches tracking this one, in display order.
	Children []string
	Depth    int
	StackID  int
	// Commits are the branch's unique commits relative to Parent, oldest first.
	// Only populated by Stack.PopulateCommits.
	Commits []Commit
}

// IsRoot reports whether the branch has no local parent
func (b *Branch) IsRoot() bool {
	return !b.LocalParent
}

// NewestCommit returns the most recent unique commit, if any
func (b *Branch) NewestCommit() (Commit, bool) {
	if len(b.Commits) == 0 {
		return Commit{}, false
	}
	return b.Commits[len(b.Commits)-1], true
}

// ParentScope filters which kind of parent ParentOf reports
type ParentScope int

const (
	// ScopeAll reports any tracked parent
	ScopeAll ParentScope = iota
	// ScopeLocal reports the parent only when it is a local branch
	ScopeLocal
	// ScopeRemote reports the parent only when it is not a local branch
	ScopeRemote
)

// SyncResultKind is the outcome of syncing one branch
type SyncResultKind int

const (
	// SyncSuccess means the branch was rebased and still has unique commits
	SyncSuccess SyncResultKind = iota
	// SyncNoDiff means the branch has no commits left beyond its parent
	SyncNoDiff
	// SyncConflict means the rebase onto Parent stopped and was aborted
	SyncConflict
)

func (k SyncResultKind) String() string {
	switch k {
	case SyncSuccess:
		return "success"
	case SyncNoDiff:
		return "no diff"
	case SyncConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// SyncResult is produced once per branch touched by Sync
type SyncResult struct {
	Branch string
	Kind   SyncResultKind
	// Parent is set for SyncConflict results
	Parent string
}

// SplitGroup is the run of commits, oldest first, that becomes one new branch
type SplitGroup []Commit
