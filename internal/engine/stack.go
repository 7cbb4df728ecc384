package engine

import (
	"context"
	"fmt"
	"sort"
)

// Stack is the forest of local branches. It is rebuilt from the repository
// by Graph.Load and never persisted.
type Stack struct {
	Branches map[string]*Branch
	// Roots are the branches without a local parent, in display order
	Roots []string
	// Current is the checked-out branch, or "" when HEAD is detached
	Current string
}

// Load builds the forest for the repository's current state
func (g *Graph) Load(ctx context.Context) (*Stack, error) {
	branches, err := g.Branches(ctx)
	if err != nil {
		return nil, err
	}
	parents, err := g.Parents(ctx)
	if err != nil {
		return nil, err
	}
	current, err := g.repo.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}
	return BuildStack(branches, parents, current, g.log), nil
}

// BuildStack assembles a forest from a branch list, a parent map and the
// current branch name.
func BuildStack(branches []string, parents map[string]string, current string, log Logger) *Stack {
	if log == nil {
		log = nopLogger{}
	}
	s := &Stack{Branches: make(map[string]*Branch, len(branches))}
	for _, name := range branches {
		s.Branches[name] = &Branch{Name: name}
	}
	if _, ok := s.Branches[current]; ok {
		s.Current = current
	}

	for name, b := range s.Branches {
		b.Parent = parents[name]
		_, b.LocalParent = s.Branches[b.Parent]
		if b.Parent == name {
			b.LocalParent = false
		}
	}
	s.breakCycles(log)
	s.linkChildren()
	s.computeDepths()
	s.AssignStackIDs()
	s.sortForDisplay()
	return s
}

// breakCycles cuts the local-parent edge that closes any loop in the
// upstream chain, so every branch is reachable from a root.
func (s *Stack) breakCycles(log Logger) {
	done := make(map[string]bool, len(s.Branches))
	for _, start := range s.names() {
		path := make(map[string]bool)
		name := start
		for name != "" && !done[name] {
			if path[name] {
				log.Debug("branch %s closes an upstream cycle; treating it as a root", name)
				s.Branches[name].LocalParent = false
				break
			}
			path[name] = true
			b := s.Branches[name]
			if !b.LocalParent {
				break
			}
			name = b.Parent
		}
		for n := range path {
			done[n] = true
		}
	}
}

func (s *Stack) linkChildren() {
	s.Roots = s.Roots[:0]
	for _, b := range s.Branches {
		b.Children = nil
	}
	for _, name := range s.names() {
		b := s.Branches[name]
		if b.LocalParent {
			parent := s.Branches[b.Parent]
			parent.Children = append(parent.Children, name)
		} else {
			s.Roots = append(s.Roots, name)
		}
	}
}

func (s *Stack) computeDepths() {
	var visit func(name string, depth int)
	visit = func(name string, depth int) {
		b := s.Branches[name]
		b.Depth = depth
		for _, child := range b.Children {
			visit(child, depth+1)
		}
	}
	for _, root := range s.Roots {
		visit(root, 0)
	}
}

// names returns every branch name in sorted order
func (s *Stack) names() []string {
	names := make([]string, 0, len(s.Branches))
	for name := range s.Branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// less orders branches for display: stack id descending so the current
// lineage (0) leads, then depth ascending, then name.
func (s *Stack) less(a, b string) bool {
	ba, bb := s.Branches[a], s.Branches[b]
	if ba.StackID != bb.StackID {
		return ba.StackID > bb.StackID
	}
	if ba.Depth != bb.Depth {
		return ba.Depth < bb.Depth
	}
	return a < b
}

func (s *Stack) sortForDisplay() {
	sort.SliceStable(s.Roots, func(i, j int) bool { return s.less(s.Roots[i], s.Roots[j]) })
	for _, b := range s.Branches {
		children := b.Children
		sort.SliceStable(children, func(i, j int) bool { return s.less(children[i], children[j]) })
	}
}

// Branch returns the named branch, or nil
func (s *Stack) Branch(name string) *Branch {
	return s.Branches[name]
}

// Ordered returns every branch in display order
func (s *Stack) Ordered() []*Branch {
	out := make([]*Branch, 0, len(s.Branches))
	for _, name := range s.names() {
		out = append(out, s.Branches[name])
	}
	sort.SliceStable(out, func(i, j int) bool { return s.less(out[i].Name, out[j].Name) })
	return out
}

// Lineage returns name and its local ancestors, root first
func (s *Stack) Lineage(name string) []string {
	var chain []string
	for b := s.Branches[name]; b != nil; {
		chain = append([]string{b.Name}, chain...)
		if !b.LocalParent {
			break
		}
		b = s.Branches[b.Parent]
	}
	return chain
}

// PopulateCommits fills Commits for every branch with a tracked parent.
// A branch whose remote upstream cannot be diffed (for example one reported
// as gone) is left without commits.
func (s *Stack) PopulateCommits(ctx context.Context, g *Graph) error {
	for _, name := range s.names() {
		b := s.Branches[name]
		if b.Parent == "" {
			continue
		}
		diff, err := g.CommitDiff(ctx, name, b.Parent)
		if err != nil {
			if !b.LocalParent {
				g.log.Debug("could not diff %s against %s: %v", name, b.Parent, err)
				continue
			}
			return fmt.Errorf("failed to read commits of %s: %w", name, err)
		}
		b.Commits = make([]Commit, len(diff))
		for i, c := range diff {
			b.Commits[len(diff)-1-i] = c
		}
	}
	return nil
}
