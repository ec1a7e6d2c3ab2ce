package grid

import (
	"github.com/katalvlaran/aockit/coord"
	"github.com/katalvlaran/aockit/graph"
)

// ToGraph converts the passable cells of g into a directed graph. Each
// passable cell becomes a vertex whose Data is its coordinate and whose Label
// is the coordinate's String form. Unit-weight edges join neighbouring
// passable cells (under conn) in both directions. A nil passable admits
// every cell.
//
// The returned map resolves a coordinate to its vertex ID. Vertices are
// allocated in row-major order.
//
// Complexity: O(W×H×d) time and memory.
func ToGraph[T any](g [][]T, conn Connectivity, passable func(T) bool, opts ...graph.Option) (*graph.Graph[coord.Coord], map[coord.Coord]graph.ID) {
	open := func(c coord.Coord) bool {
		return passable == nil || passable(g[c.Y][c.X])
	}

	out := graph.New[coord.Coord](opts...)
	ids := make(map[coord.Coord]graph.ID)
	// Add all vertices
	for y, row := range g {
		for x := range row {
			c := coord.New(int64(x), int64(y))
			if open(c) {
				ids[c] = out.AddVertex(c, graph.WithLabel(c.String()))
			}
		}
	}
	// Add edges for each neighbour pair; both endpoints visit each other.
	for y, row := range g {
		for x := range row {
			c := coord.New(int64(x), int64(y))
			u, ok := ids[c]
			if !ok {
				continue
			}
			for _, n := range Neighbors(g, c, conn) {
				if v, ok := ids[n]; ok {
					_ = out.AddEdge(u, v, 1)
				}
			}
		}
	}

	return out, ids
}
