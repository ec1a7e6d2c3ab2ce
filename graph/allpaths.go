package graph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/aockit/coord"
)

// AllShortestPaths returns every shortest path from start to end, each as
// an ID sequence in start-to-end order. Paths are sorted lexicographically.
//
// Where plain Dijkstra keeps a single predecessor per vertex, this keeps the
// full set of predecessors that achieve the shortest distance and expands
// every combination. That answers questions such as "which vertices lie on
// some shortest path".
//
// Returns ErrVertexNotFound if either endpoint is not live, ErrNegativeWeight
// as Dijkstra does, and ErrNoPath if end is unreachable. When start == end
// the single path [start] is returned.
//
// With zero-weight edges only simple paths are produced: a predecessor
// already on the partial path is skipped.
//
// Complexity: O((V + E) log V) for the search plus O(P·L) for P paths of
// length L; P can grow exponentially on lattice-like graphs.
func (g *Graph[T]) AllShortestPaths(start, end ID) ([][]ID, error) {
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, end)
	}
	r, err := g.newRunner(start)
	if err != nil {
		return nil, err
	}
	r.process()
	if r.dist[end] == Unreachable {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, start, end)
	}

	preds := r.predecessorSets()

	var (
		paths  [][]ID
		stack  []ID
		onPath = make(map[ID]bool)
	)
	var walk func(id ID)
	walk = func(id ID) {
		stack = append(stack, id)
		onPath[id] = true
		if id == start {
			path := make([]ID, len(stack))
			for i, v := range stack {
				path[len(stack)-1-i] = v
			}
			paths = append(paths, path)
		} else {
			for _, p := range preds[id] {
				if !onPath[p] {
					walk(p)
				}
			}
		}
		onPath[id] = false
		stack = stack[:len(stack)-1]
	}
	walk(end)

	slices.SortFunc(paths, func(a, b []ID) int { return slices.Compare(a, b) })

	return paths, nil
}

// predecessorSets returns, for each reached vertex v, the sorted distinct
// vertices u with an edge u→v such that dist[u]+w == dist[v].
func (r *runner[T]) predecessorSets() map[ID][]ID {
	preds := make(map[ID][]ID)
	for u, v := range r.g.vertices {
		du := r.dist[u]
		if du == Unreachable {
			continue
		}
		for _, e := range v.edges {
			dv := r.dist[e.To]
			if dv == Unreachable || coord.SaturatingAdd(du, e.Weight) != dv {
				continue
			}
			if !slices.Contains(preds[e.To], u) {
				preds[e.To] = append(preds[e.To], u)
			}
		}
	}
	for _, ps := range preds {
		slices.Sort(ps)
	}

	return preds
}
