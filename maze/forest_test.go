package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type setState struct {
	parent Handle
	rank   int
}

func snapshot(g *Grid) []setState {
	state := make([]setState, len(g.nodes))
	for i, n := range g.nodes {
		state[i] = setState{parent: n.parent, rank: n.rank}
	}
	return state
}

func newForestGrid(t *testing.T, width, height int) (*Grid, *Forest) {
	t.Helper()
	g, err := New(width, height)
	require.NoError(t, err)
	f := NewForest()
	f.MakeSets(g.Nodes())
	return g, f
}

// chainLength follows parent links until a self-rooted node, giving up after limit steps.
func chainLength(g *Grid, n *Node, limit int) (int, bool) {
	steps := 0
	for cur := n; cur.parent != cur.handle; cur = g.node(cur.parent) {
		steps++
		if steps > limit {
			return steps, false
		}
	}
	return steps, true
}

func TestMakeSets(t *testing.T) {
	t.Run("every node is its own root", func(t *testing.T) {
		g, f := newForestGrid(t, 4, 3)
		for _, n := range g.Nodes() {
			root, err := f.Find(n)
			require.NoError(t, err)
			assert.Same(t, n, root)
			assert.Equal(t, 0, n.Rank())
		}
	})

	t.Run("empty collection is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() { NewForest().MakeSets(nil) })
	})

	t.Run("resets a used forest", func(t *testing.T) {
		g, f := newForestGrid(t, 2, 1)
		a, b := mustNode(t, g, 0, 0), mustNode(t, g, 0, 1)
		_, err := f.Union(a, b)
		require.NoError(t, err)

		f.MakeSets(g.Nodes())
		ok, err := f.Connected(a, b)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, a.Rank())
	})
}

func TestUninitializedSet(t *testing.T) {
	g, err := New(2, 1)
	require.NoError(t, err)
	f := NewForest()
	a, b := mustNode(t, g, 0, 0), mustNode(t, g, 0, 1)

	_, err = f.Find(a)
	assert.ErrorIs(t, err, ErrUninitializedSet)

	_, err = f.Union(a, b)
	assert.ErrorIs(t, err, ErrUninitializedSet)

	f.MakeSets([]*Node{a})
	before := snapshot(g)
	_, err = f.Union(a, b)
	assert.ErrorIs(t, err, ErrUninitializedSet)
	assert.Equal(t, before, snapshot(g))
}

func TestForeignNode(t *testing.T) {
	g1, f := newForestGrid(t, 2, 2)
	g2, _ := newForestGrid(t, 2, 2)

	_, err := f.Union(mustNode(t, g1, 0, 0), mustNode(t, g2, 0, 1))
	assert.ErrorIs(t, err, ErrForeignNode)

	_, err = f.Connected(mustNode(t, g1, 0, 0), mustNode(t, g2, 0, 0))
	assert.ErrorIs(t, err, ErrForeignNode)
}

func TestUnion(t *testing.T) {
	t.Run("joins two sets", func(t *testing.T) {
		g, f := newForestGrid(t, 5, 5)
		a, b := mustNode(t, g, 0, 0), mustNode(t, g, 4, 4)

		merged, err := f.Union(a, b)
		require.NoError(t, err)
		assert.True(t, merged)

		ra, err := f.Find(a)
		require.NoError(t, err)
		rb, err := f.Find(b)
		require.NoError(t, err)
		assert.Same(t, ra, rb)
	})

	t.Run("repeated union changes nothing", func(t *testing.T) {
		g, f := newForestGrid(t, 4, 4)
		nodes := g.Nodes()
		// Build two multi-level trees first so neither argument is a root.
		for _, pair := range [][2]int{{0, 1}, {2, 3}, {0, 2}, {4, 5}, {6, 7}, {4, 6}} {
			_, err := f.Union(nodes[pair[0]], nodes[pair[1]])
			require.NoError(t, err)
		}

		merged, err := f.Union(nodes[3], nodes[7])
		require.NoError(t, err)
		require.True(t, merged)

		before := snapshot(g)
		merged, err = f.Union(nodes[3], nodes[7])
		require.NoError(t, err)
		assert.False(t, merged)
		assert.Equal(t, before, snapshot(g))
	})

	t.Run("lower rank hangs under higher rank", func(t *testing.T) {
		g, f := newForestGrid(t, 3, 1)
		a, b, c := mustNode(t, g, 0, 0), mustNode(t, g, 0, 1), mustNode(t, g, 0, 2)

		_, err := f.Union(a, b)
		require.NoError(t, err)
		root, err := f.Find(a)
		require.NoError(t, err)
		require.Equal(t, 1, root.Rank())

		_, err = f.Union(c, a)
		require.NoError(t, err)
		newRoot, err := f.Find(c)
		require.NoError(t, err)
		assert.Same(t, root, newRoot)
		assert.Equal(t, 1, root.Rank(), "unequal ranks must not grow the rank")
		assert.Equal(t, 0, c.Rank())
	})
}

func TestFindCompressesPath(t *testing.T) {
	g, f := newForestGrid(t, 4, 1)
	nodes := g.Nodes()

	// Hand-build a chain 3 -> 2 -> 1 -> 0.
	for i := 1; i < len(nodes); i++ {
		nodes[i].parent = nodes[i-1].handle
	}

	root, err := f.Find(nodes[3])
	require.NoError(t, err)
	assert.Same(t, nodes[0], root)
	for _, n := range nodes {
		assert.Equal(t, nodes[0].handle, n.parent, "%v not compressed", n)
	}
}

func TestForestProperties(t *testing.T) {
	const width, height = 12, 9
	g, f := newForestGrid(t, width, height)
	nodes := g.Nodes()
	r := rand.New(rand.NewSource(2024))

	ranks := make([]int, len(nodes))
	merges := 0
	for i := 0; i < 4*len(nodes); i++ {
		a, b := nodes[r.Intn(len(nodes))], nodes[r.Intn(len(nodes))]
		merged, err := f.Union(a, b)
		require.NoError(t, err)
		if merged {
			merges++
		}

		ok, err := f.Connected(a, b)
		require.NoError(t, err)
		require.True(t, ok)

		for j, n := range nodes {
			require.GreaterOrEqual(t, n.Rank(), ranks[j], "rank of %v decreased", n)
			ranks[j] = n.Rank()

			_, finite := chainLength(g, n, len(nodes))
			require.True(t, finite, "parent chain of %v does not reach a root", n)
		}
	}

	roots, err := f.Roots(nodes)
	require.NoError(t, err)
	assert.Equal(t, len(nodes)-merges, len(roots))
}

func TestFullConnectionNeedsNMinusOneMerges(t *testing.T) {
	g, f := newForestGrid(t, 6, 4)
	merges := 0
	for _, n := range g.Nodes() {
		for _, d := range Directions {
			nb := n.Neighbor(d)
			if nb == nil {
				continue
			}
			merged, err := f.Union(n, nb)
			require.NoError(t, err)
			if merged {
				merges++
			}
		}
	}

	assert.Equal(t, g.Len()-1, merges)
	roots, err := f.Roots(g.Nodes())
	require.NoError(t, err)
	assert.Len(t, roots, 1)
}

func TestTwoByTwoScenario(t *testing.T) {
	g, f := newForestGrid(t, 2, 2)
	n00, n01 := mustNode(t, g, 0, 0), mustNode(t, g, 0, 1)
	n10, n11 := mustNode(t, g, 1, 0), mustNode(t, g, 1, 1)
	all := []*Node{n00, n01, n10, n11}

	roots, err := f.Roots(all)
	require.NoError(t, err)
	assert.Len(t, roots, 4)

	merges := 0
	for _, pair := range [][2]*Node{{n00, n01}, {n10, n11}} {
		merged, err := f.Union(pair[0], pair[1])
		require.NoError(t, err)
		require.True(t, merged)
		merges++
	}

	roots, err = f.Roots(all)
	require.NoError(t, err)
	assert.Len(t, roots, 2)

	merged, err := f.Union(n00, n10)
	require.NoError(t, err)
	require.True(t, merged)
	merges++

	root, err := f.Find(n00)
	require.NoError(t, err)
	for _, n := range all {
		r, err := f.Find(n)
		require.NoError(t, err)
		assert.Same(t, root, r)
	}

	before := snapshot(g)
	merged, err = f.Union(n01, n11)
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, before, snapshot(g))
	assert.Equal(t, 3, merges)
}
