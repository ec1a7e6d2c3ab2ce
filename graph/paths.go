package graph

import (
	"fmt"
	"math"
	"math/bits"
)

// CountPaths returns the number of distinct directed paths from start to
// end, counting parallel edges separately. Counts are memoised per vertex,
// so each vertex and edge is visited once.
//
// Paths stop at their first visit of end. The part of the graph reachable
// from start without passing through end must be acyclic; otherwise
// ErrCycleDetected is returned. The count saturates at math.MaxUint64.
//
// Returns ErrVertexNotFound if either endpoint is not live.
// Complexity: O(V + E).
func (g *Graph[T]) CountPaths(start, end ID) (uint64, error) {
	if !g.HasVertex(start) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, end)
	}

	state := make(map[ID]int)
	memo := make(map[ID]uint64)
	var count func(id ID) (uint64, error)
	count = func(id ID) (uint64, error) {
		if id == end {
			return 1, nil
		}
		switch state[id] {
		case black:
			return memo[id], nil
		case gray:
			return 0, fmt.Errorf("%w: at vertex %d", ErrCycleDetected, id)
		}
		state[id] = gray
		var total uint64
		for _, e := range g.vertices[id].edges {
			n, err := count(e.To)
			if err != nil {
				return 0, err
			}
			var carry uint64
			if total, carry = bits.Add64(total, n, 0); carry != 0 {
				total = math.MaxUint64
			}
		}
		state[id] = black
		memo[id] = total

		return total, nil
	}

	return count(start)
}
