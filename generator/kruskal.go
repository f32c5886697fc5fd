// Package generator carves perfect mazes out of a maze.Grid.
package generator

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Stats describes one generation run.
type Stats struct {
	Merges   int // Unions that joined two regions, one wall knocked down each.
	Rejected int // Candidate walls kept because both sides were already connected.
}

// Options configures a Kruskal generator.
type Options struct {
	Seed   int64        // Seed of the shared random source; 0 picks one from the clock.
	Logger *slog.Logger // Destination for progress records; discarded when nil.
}

// Kruskal knocks down walls in random order, skipping any wall whose two
// cells are already connected.
type Kruskal struct {
	forest *maze.Forest
	rng    *rand.Rand
	logger *slog.Logger
	seed   int64
}

// wall is a candidate passage between two wired nodes.
type wall struct {
	from, to *maze.Node
}

// NewKruskal creates a generator. A nil opts uses the defaults.
func NewKruskal(opts *Options) *Kruskal {
	if opts == nil {
		opts = &Options{}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Kruskal{
		forest: maze.NewForest(),
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		seed:   seed,
	}
}

// Seed returns the seed the random source was built from.
func (k *Kruskal) Seed() int64 {
	return k.seed
}

// Generate resets g and carves a perfect maze into it.
func (k *Kruskal) Generate(g *maze.Grid) (Stats, error) {
	g.Reset()
	nodes := g.Nodes()
	k.forest.MakeSets(nodes)

	walls := interiorWalls(nodes)
	k.rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	var stats Stats
	target := len(nodes) - 1
	for _, w := range walls {
		if stats.Merges == target {
			break
		}

		merged, err := k.forest.Union(w.from, w.to)
		if err != nil {
			return stats, fmt.Errorf("union %v and %v: %w", w.from, w.to, err)
		}
		if !merged {
			stats.Rejected++
			continue
		}

		if err := w.from.KnockDownWall(w.to); err != nil {
			return stats, fmt.Errorf("open passage %v -> %v: %w", w.from, w.to, err)
		}
		stats.Merges++
		k.logger.Debug("passage opened", "from", w.from.Position(), "to", w.to.Position())
	}

	k.logger.Info("maze generated",
		"width", g.Width(),
		"height", g.Height(),
		"merges", stats.Merges,
		"rejected", stats.Rejected,
		"seed", k.seed,
	)
	return stats, nil
}

// interiorWalls lists every wall between two cells once, via the east and south links.
func interiorWalls(nodes []*maze.Node) []wall {
	walls := make([]wall, 0, 2*len(nodes))
	for _, n := range nodes {
		for _, d := range []maze.Direction{maze.East, maze.South} {
			if nb := n.Neighbor(d); nb != nil {
				walls = append(walls, wall{from: n, to: nb})
			}
		}
	}
	return walls
}
