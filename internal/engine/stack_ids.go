package engine

import "sort"

// AssignStackIDs groups branches into stack ids. The current branch and all
// of its ancestors are pinned to 0. Walking each root depth-first, a branch
// with one child hands its id down; a branch with several children takes a
// new, lower id from a shared counter for each child. An id is only written
// the first time a branch is reached, so pinned branches keep 0.
//
// Roots outside the current lineage take a fresh id as well so unrelated
// stacks never share 0. Children are visited in name order, which makes the
// assignment independent of display order and stable across runs.
func (s *Stack) AssignStackIDs() {
	assigned := make(map[string]bool, len(s.Branches))
	for _, b := range s.Branches {
		b.StackID = 0
	}

	for name := s.Current; name != ""; {
		b, ok := s.Branches[name]
		if !ok || assigned[name] {
			break
		}
		b.StackID = 0
		assigned[name] = true
		name = b.Parent
	}

	counter := 0
	var walk func(name string, id int)
	walk = func(name string, id int) {
		b := s.Branches[name]
		if !assigned[name] {
			b.StackID = id
			assigned[name] = true
		}
		children := append([]string(nil), b.Children...)
		sort.Strings(children)
		switch len(children) {
		case 0:
		case 1:
			walk(children[0], b.StackID)
		default:
			for _, child := range children {
				counter--
				walk(child, counter)
			}
		}
	}

	roots := append([]string(nil), s.Roots...)
	sort.Strings(roots)
	for _, root := range roots {
		id := 0
		if !assigned[root] {
			counter--
			id = counter
		}
		walk(root, id)
	}
}
