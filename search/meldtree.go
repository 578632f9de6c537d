package search

import "math/rand"

// meldTree is a randomized four-way meldable min-heap. Melding descends a
// random child branch, which keeps the tree balanced in expectation without
// any rank bookkeeping.
type meldTree[S any] struct {
	children [4]*meldTree[S]
	value    S
	priority int64
	parent   *meldTree[S]
}

func (t *meldTree[S]) detach(replacement *meldTree[S]) {
	if t == nil || t.parent == nil {
		return
	}
	for i, child := range t.parent.children {
		if child == t {
			t.parent.children[i] = replacement
			break
		}
	}
	t.parent = nil
}

// meld merges two trees and returns the new root, which is whichever input
// root carries the smaller priority.
func (t *meldTree[S]) meld(other *meldTree[S]) *meldTree[S] {
	if t == nil {
		other.detach(nil)
		return other
	}
	if other == nil {
		t.detach(nil)
		return t
	}
	if t == other {
		return t
	}

	// keep t the smaller of the two
	if other.priority < t.priority {
		t, other = other, t
	}

	root := t
	root.detach(nil)

	for {
		idx := rand.Intn(len(t.children))

		if t.children[idx] == nil {
			other.parent = t
			t.children[idx] = other
			break
		}

		// the random child still beats other: descend into it
		if t.children[idx].priority <= other.priority {
			t = t.children[idx]
			continue
		}

		// other belongs between t and the random child: splice it in and
		// keep going with the displaced child as the one to merge
		displaced := t.children[idx]
		t.children[idx] = other
		other.parent = t
		t = other
		other = displaced
	}

	return root
}

// deleteMin removes the root and melds its children into the new root.
func (t *meldTree[S]) deleteMin() *meldTree[S] {
	parent := t.parent
	root := t.children[0].meld(t.children[1])
	for i := 2; i < len(t.children); i++ {
		root = root.meld(t.children[i])
	}
	if parent != nil {
		// only reachable when deleting below the root, which the frontier
		// never does
		t.detach(root)
		if root != nil {
			root.parent = parent
		}
	}
	return root
}

// meldFrontier adapts the meld tree to the frontier interface, tracking the
// element count the tree itself does not keep.
type meldFrontier[S any] struct {
	root *meldTree[S]
	n    int
}

func newMeldFrontier[S any]() *meldFrontier[S] {
	return &meldFrontier[S]{}
}

func (m *meldFrontier[S]) Push(value S, priority int64) {
	m.root = m.root.meld(&meldTree[S]{value: value, priority: priority})
	m.n++
}

func (m *meldFrontier[S]) Pop() (S, int64) {
	value, priority := m.root.value, m.root.priority
	m.root = m.root.deleteMin()
	m.n--
	return value, priority
}

func (m *meldFrontier[S]) Len() int { return m.n }
