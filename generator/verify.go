package generator

import "github.com/beka-birhanu/vinom-maze/maze"

// Perfect reports whether g is a spanning tree: every cell reachable through
// open passages and exactly Len()-1 passages open. It clears and then uses the
// visited flags of the nodes.
func Perfect(g *maze.Grid) bool {
	if g.OpenPassages() != g.Len()-1 {
		return false
	}

	g.ClearFlags()
	start := g.Nodes()[0]
	start.Visit()
	stack := []*maze.Node{start}
	reached := 1
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range n.PassableNeighbors() {
			if nb.Visited() {
				continue
			}
			nb.Visit()
			reached++
			stack = append(stack, nb)
		}
	}
	return reached == g.Len()
}
