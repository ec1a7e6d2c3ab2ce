// Package grid runs path searches and region analysis directly on
// caller-owned [][]T cell arrays, addressed with coord.Coord as g[c.Y][c.X].
//
// What:
//
//   - Dijkstra finds a cheapest path between two cells. Terrain rules live in
//     a caller-supplied CostFunc, so the search knows nothing about walls,
//     slopes or turning penalties.
//   - InBounds, At and Neighbors guard every index derived from coordinate
//     arithmetic. Rows may have different lengths (jagged grids).
//   - Components groups cells into connected regions under Conn4 or Conn8.
//   - ToGraph converts the passable cells into a *graph.Graph for the
//     general algorithms of package graph.
//
// Cost functions:
//
//	cost := func(g [][]byte, cur coord.Coord, acc int64, next coord.Coord) int64 {
//	    if g[next.Y][next.X] == '#' {
//	        return grid.Impassable
//	    }
//	    return 1
//	}
//
// The returned value is the cost of the single step cur→next; the search
// adds it to acc with saturation. Impassable marks a wall. A negative step
// aborts the search with ErrNegativeCost.
//
// Complexity:
//
//   - Dijkstra:   O(W×H log(W×H)), Memory: O(W×H).
//   - Components: O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//   - ToGraph:    O(W×H×d), Memory: O(W×H×d).
//
// Options:
//
//   - WithLogger: receive a debug event per search.
//   - WithMaxCost: stop expanding cells whose cost would exceed a cap.
//
// Errors:
//
//   - ErrOutOfBounds: start or end is not inside the grid.
//   - ErrNoPath: end cannot be reached from start.
//   - ErrNilCostFunc: Dijkstra was called without a cost function.
//   - ErrNegativeCost: the cost function returned a negative step.
//   - ErrBadMaxCost: WithMaxCost was given a negative cap.
package grid
