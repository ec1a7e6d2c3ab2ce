// Package coord provides the 2D integer coordinate and direction primitives
// shared by the graph and grid packages of aockit.
//
// What:
//
//   - Coord is a signed (X, Y) pair. X selects the column and Y the row, so a
//     cell of a [][]T grid is addressed as grid[c.Y][c.X].
//   - Direction is the closed set of cardinal moves {Up, Right, Down, Left}.
//   - Compass is the eight-way set {N, NE, E, SE, S, SW, W, NW}.
//
// Arithmetic:
//
//   - Add, Sub and Scale saturate at the int64 limits instead of wrapping.
//     Direction arithmetic near the edge of a grid may produce negative or
//     oversized components; callers gate indexing with AsUnsigned or
//     grid.InBounds.
//   - Manhattan returns a uint64 and saturates at math.MaxUint64.
//
// Ordering:
//
//   - Compare orders coordinates by their exact Euclidean norm from the
//     origin, breaking ties by X then Y. The order is total and deterministic,
//     which makes Coord usable as a priority-queue tie breaker.
//
// Orientation:
//
//	Up / N = (0,-1)   Down / S = (0,1)   Left / W = (-1,0)   Right / E = (1,0)
//
// Complexity: every operation is O(1).
package coord
