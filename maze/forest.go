package maze

import (
	"errors"
	"fmt"
)

// Forest-related errors.
var (
	ErrUninitializedSet = errors.New("node was never placed in a set")
	ErrForeignNode      = errors.New("nodes belong to different grids")
)

// Forest is the disjoint-set algorithm over the Nodes of a Grid. It keeps no
// state of its own: parents and ranks live in the Nodes.
type Forest struct{}

// NewForest returns a Forest.
func NewForest() *Forest {
	return &Forest{}
}

// MakeSets turns every node into a singleton set of rank zero.
func (f *Forest) MakeSets(nodes []*Node) {
	for _, n := range nodes {
		n.parent = n.handle
		n.rank = 0
	}
}

// Find returns the root of the set containing n. Every node on the walk is
// re-pointed straight at the root.
func (f *Forest) Find(n *Node) (*Node, error) {
	if n.parent == NoHandle {
		return nil, fmt.Errorf("find %v: %w", n.pos, ErrUninitializedSet)
	}

	g := n.grid
	root := n
	for root.parent != root.handle {
		root = g.node(root.parent)
	}

	for cur := n; cur.parent != root.handle; {
		next := g.node(cur.parent)
		cur.parent = root.handle
		cur = next
	}

	return root, nil
}

// Union merges the sets containing a and b and reports whether a merge
// happened. false means a and b were already connected, so the wall between
// them must stay up.
//
// The root of lower rank is attached under the other. On a tie b's root goes
// under a's root, whose rank grows by one.
func (f *Forest) Union(a, b *Node) (bool, error) {
	if a.grid != b.grid {
		return false, fmt.Errorf("union %v, %v: %w", a.pos, b.pos, ErrForeignNode)
	}

	ra, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return false, err
	}

	if ra == rb {
		return false, nil
	}

	root := ra
	switch {
	case ra.rank < rb.rank:
		ra.parent = rb.handle
		root = rb
	case ra.rank > rb.rank:
		rb.parent = ra.handle
	default:
		rb.parent = ra.handle
		ra.rank++
	}

	// a and b were just walked by Find; keep them one hop from the new root.
	a.parent = root.handle
	b.parent = root.handle

	return true, nil
}

// Connected reports whether a and b are in the same set.
func (f *Forest) Connected(a, b *Node) (bool, error) {
	if a.grid != b.grid {
		return false, fmt.Errorf("connected %v, %v: %w", a.pos, b.pos, ErrForeignNode)
	}

	ra, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Roots returns the distinct roots over nodes, in first-seen order.
func (f *Forest) Roots(nodes []*Node) ([]*Node, error) {
	seen := make(map[Key]struct{})
	roots := make([]*Node, 0)
	for _, n := range nodes {
		r, err := f.Find(n)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[r.Key()]; ok {
			continue
		}
		seen[r.Key()] = struct{}{}
		roots = append(roots, r)
	}
	return roots, nil
}
