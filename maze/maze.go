/*
Package maze provides the building blocks for carving rectangular perfect mazes.

A Grid is an arena of Nodes. Every Node carries four wall flags, links to its
wired neighbors and the disjoint-set fields used by Forest. A generation driver
builds a Grid, calls Forest.MakeSets once, and then repeatedly unions pairs of
neighboring Nodes, knocking down the wall between them whenever the union
actually merged two regions. Once a single region remains, the walls describe a
spanning tree: exactly one path between any two cells.

The package has no generation policy and is not safe for concurrent use.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Grid-related errors.
var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("position is out of the maze")
)

// Grid is a rectangular arena of wired Nodes.
type Grid struct {
	id     uuid.UUID // Identity used to qualify node keys across grids.
	width  int       // Number of columns.
	height int       // Number of rows.
	nodes  []Node    // Row-major arena; a Handle is an index into it.
}

// New builds a width x height grid with every wall up and every node linked to
// its neighbors. Links are symmetric: if a's east neighbor is b, b's west
// neighbor is a. Border sides are linked to NoHandle.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	g := &Grid{
		id:     uuid.New(),
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			h := g.handleAt(row, col)
			n := &g.nodes[h]
			n.grid = g
			n.handle = h
			n.pos = CellPosition{Row: row, Col: col}
			n.parent = NoHandle
			n.walls = [4]bool{true, true, true, true}
			for _, d := range Directions {
				delta := d.Delta()
				n.links[d] = NoHandle
				if g.InBound(row+delta.Row, col+delta.Col) {
					n.links[d] = g.handleAt(row+delta.Row, col+delta.Col)
				}
			}
		}
	}

	return g, nil
}

// ID returns the identity of the grid.
func (g *Grid) ID() uuid.UUID {
	return g.id
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of nodes in the grid.
func (g *Grid) Len() int {
	return len(g.nodes)
}

// InBound reports whether (row, col) lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Node returns the node at (row, col).
func (g *Grid) Node(row, col int) (*Node, error) {
	if !g.InBound(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	return &g.nodes[g.handleAt(row, col)], nil
}

// Nodes returns every node of the grid in row-major order.
func (g *Grid) Nodes() []*Node {
	nodes := make([]*Node, len(g.nodes))
	for i := range g.nodes {
		nodes[i] = &g.nodes[i]
	}
	return nodes
}

// Reset raises every wall and clears the traversal flags and the set
// bookkeeping. Links are kept. MakeSets must be called again before the next
// Find or Union.
func (g *Grid) Reset() {
	for i := range g.nodes {
		n := &g.nodes[i]
		n.walls = [4]bool{true, true, true, true}
		n.parent = NoHandle
		n.rank = 0
		n.visited = false
		n.examined = false
	}
}

// ClearFlags resets the visited and examined flags of every node.
func (g *Grid) ClearFlags() {
	for i := range g.nodes {
		g.nodes[i].visited = false
		g.nodes[i].examined = false
	}
}

// OpenPassages counts the walls that have been knocked down between two nodes.
func (g *Grid) OpenPassages() int {
	open := 0
	for i := range g.nodes {
		n := &g.nodes[i]
		// East and south only, so each passage is counted once.
		if n.links[East] != NoHandle && !n.walls[East] {
			open++
		}
		if n.links[South] != NoHandle && !n.walls[South] {
			open++
		}
	}
	return open
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", g.width) + "\n")

	for row := 0; row < g.height; row++ {
		cells := "|"
		floor := "+"
		for col := 0; col < g.width; col++ {
			n := &g.nodes[g.handleAt(row, col)]
			if n.walls[East] {
				cells += "   |"
			} else {
				cells += "    "
			}
			if n.walls[South] {
				floor += "---+"
			} else {
				floor += "   +"
			}
		}
		b.WriteString(cells + "\n")
		b.WriteString(floor + "\n")
	}

	return b.String()
}

// node resolves a handle, returning nil for NoHandle.
func (g *Grid) node(h Handle) *Node {
	if h == NoHandle {
		return nil
	}
	return &g.nodes[h]
}

func (g *Grid) handleAt(row, col int) Handle {
	return Handle(row*g.width + col)
}
