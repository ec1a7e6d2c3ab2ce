package grid

import "github.com/katalvlaran/aockit/coord"

// InBounds reports whether c has non-negative components, lies within the
// outer length of g and within the length of its own row.
// Complexity: O(1).
func InBounds[T any](g [][]T, c coord.Coord) bool {
	if c.X < 0 || c.Y < 0 || c.Y >= int64(len(g)) {
		return false
	}

	return c.X < int64(len(g[c.Y]))
}

// At returns the cell at c, or the zero value and false if c is out of bounds.
func At[T any](g [][]T, c coord.Coord) (T, bool) {
	if !InBounds(g, c) {
		var zero T
		return zero, false
	}

	return g[c.Y][c.X], true
}

// Neighbors returns the in-bounds neighbours of c in clockwise order
// starting at north.
func Neighbors[T any](g [][]T, c coord.Coord, conn Connectivity) []coord.Coord {
	var all []coord.Coord
	if conn == Conn8 {
		n8 := c.Neighbors8()
		all = n8[:]
	} else {
		n4 := c.Neighbors4()
		all = n4[:]
	}
	out := make([]coord.Coord, 0, len(all))
	for _, n := range all {
		if InBounds(g, n) {
			out = append(out, n)
		}
	}

	return out
}
