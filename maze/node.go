package maze

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Node-related errors.
var (
	ErrNotAdjacent = errors.New("node is not a wired neighbor")
	ErrNoNeighbor  = errors.New("no passable neighbor available")
)

// Handle addresses a Node inside the arena of its Grid.
type Handle int

// NoHandle marks a missing link: a grid border, or a parent that was never set.
const NoHandle Handle = -1

// Rand is the random source consumed by RandomPassableNeighbor.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Key identifies a Node across independently built grids.
type Key struct {
	Grid uuid.UUID    // Grid identity, see Grid.ID
	Pos  CellPosition // Position inside that grid
}

// Node is a single cell of a Grid. It carries the four wall flags, links to
// its wired neighbors and the disjoint-set bookkeeping used by Forest.
type Node struct {
	grid     *Grid        // Arena the node lives in.
	handle   Handle       // Index of the node inside the arena.
	pos      CellPosition // Identity of the node.
	walls    [4]bool      // walls[d] is true while the barrier on side d is up.
	links    [4]Handle    // links[d] is the neighbor on side d, NoHandle on a border.
	parent   Handle       // Disjoint-set parent, NoHandle until MakeSets.
	rank     int          // Upper bound on the height of the subtree rooted here.
	visited  bool
	examined bool
}

// Position returns the grid coordinates of the node.
func (n *Node) Position() CellPosition {
	return n.pos
}

// Handle returns the arena index of the node.
func (n *Node) Handle() Handle {
	return n.handle
}

// Key returns the grid-qualified identity of the node.
func (n *Node) Key() Key {
	return Key{Grid: n.grid.ID(), Pos: n.pos}
}

// Equal reports whether both nodes sit at the same coordinates.
// Wall and set state are ignored, and so is the owning grid; use Key to tell
// nodes of different grids apart.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.pos == other.pos
}

// Rank returns the disjoint-set rank of the node.
func (n *Node) Rank() int {
	return n.rank
}

// Visit sets the visited flag.
func (n *Node) Visit() {
	n.visited = true
}

// Visited reports whether the node has been visited.
func (n *Node) Visited() bool {
	return n.visited
}

// Examine sets the examined flag.
func (n *Node) Examine() {
	n.examined = true
}

// Examined reports whether the node has been examined.
func (n *Node) Examined() bool {
	return n.examined
}

// HasAllWalls reports whether all four walls are still up.
func (n *Node) HasAllWalls() bool {
	return n.walls[North] && n.walls[East] && n.walls[South] && n.walls[West]
}

// IsWall reports whether the wall on side d is up.
func (n *Node) IsWall(d Direction) bool {
	return n.walls[d]
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (n *Node) HasNorthWall() bool {
	return n.walls[North]
}

// HasEastWall returns true if there is a wall on the east side of the cell.
func (n *Node) HasEastWall() bool {
	return n.walls[East]
}

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (n *Node) HasSouthWall() bool {
	return n.walls[South]
}

// HasWestWall returns true if there is a wall on the west side of the cell.
func (n *Node) HasWestWall() bool {
	return n.walls[West]
}

// Neighbor returns the node wired on side d, or nil on a border.
func (n *Node) Neighbor(d Direction) *Node {
	return n.grid.node(n.links[d])
}

// PassableNeighbors returns the wired neighbors whose connecting wall is down.
// The result is empty, never nil, when there are none.
func (n *Node) PassableNeighbors() []*Node {
	neighbors := make([]*Node, 0, len(Directions))
	for _, d := range Directions {
		if n.links[d] != NoHandle && !n.walls[d] {
			neighbors = append(neighbors, n.grid.node(n.links[d]))
		}
	}
	return neighbors
}

// RandomPassableNeighbor picks one of PassableNeighbors uniformly using r.
func (n *Node) RandomPassableNeighbor(r Rand) (*Node, error) {
	neighbors := n.PassableNeighbors()
	if len(neighbors) == 0 {
		return nil, ErrNoNeighbor
	}
	return neighbors[r.Intn(len(neighbors))], nil
}

// FirstWalledNeighbor returns the first neighbor, in east, south, north, west
// order, that is still separated from n by a wall.
func (n *Node) FirstWalledNeighbor() (*Node, bool) {
	for _, d := range priority {
		if n.links[d] != NoHandle && n.walls[d] {
			return n.grid.node(n.links[d]), true
		}
	}
	return nil, false
}

// FirstUntouchedNeighbor returns the first neighbor, in east, south, north,
// west order, that still has all four walls up.
func (n *Node) FirstUntouchedNeighbor() (*Node, bool) {
	for _, d := range priority {
		if nb := n.grid.node(n.links[d]); nb != nil && nb.HasAllWalls() {
			return nb, true
		}
	}
	return nil, false
}

// KnockDownWall clears the wall between n and neighbor on both sides.
// neighbor must be one of the four nodes wired to n; anything else, including
// a node at the right coordinates of another grid, yields ErrNotAdjacent and
// leaves both nodes untouched.
func (n *Node) KnockDownWall(neighbor *Node) error {
	d, ok := n.sideOf(neighbor)
	if !ok {
		return fmt.Errorf("knock down wall %v -> %v: %w", n.pos, positionOf(neighbor), ErrNotAdjacent)
	}

	n.walls[d] = false
	neighbor.walls[d.Opposite()] = false
	return nil
}

// sideOf returns the side of n that neighbor is wired to.
func (n *Node) sideOf(neighbor *Node) (Direction, bool) {
	if neighbor == nil || neighbor.grid != n.grid {
		return 0, false
	}
	for _, d := range Directions {
		if n.links[d] != NoHandle && n.links[d] == neighbor.handle {
			return d, true
		}
	}
	return 0, false
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("Node[row=%d, col=%d]", n.pos.Row, n.pos.Col)
}

func positionOf(n *Node) any {
	if n == nil {
		return "<nil>"
	}
	return n.pos
}
