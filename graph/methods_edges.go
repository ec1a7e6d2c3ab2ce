package graph

import "fmt"

// AddEdge appends a directed edge from→to with the given weight to the
// outgoing list of from. Parallel edges and self-loops are allowed.
//
// Returns ErrVertexNotFound (wrapped with the offending id) if either
// endpoint is not live; the graph is left unchanged in that case.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(from, to ID, weight int64) error {
	src, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if _, ok = g.vertices[to]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}
	src.edges = append(src.edges, Edge{To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// AddEdgeBidirectional adds a→b and then b→a with the same weight.
// The call is all-or-nothing: if the reverse edge cannot be added the
// forward edge is rolled back.
func (g *Graph[T]) AddEdgeBidirectional(a, b ID, weight int64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	if err := g.AddEdge(b, a, weight); err != nil {
		// The forward edge is the last entry of a's list.
		src := g.vertices[a]
		src.edges = src.edges[:len(src.edges)-1]
		g.edgeCount--
		return err
	}

	return nil
}

// RemoveEdge deletes every edge from→to and returns how many were removed.
// Unknown endpoints remove nothing.
func (g *Graph[T]) RemoveEdge(from, to ID) int {
	src, ok := g.vertices[from]
	if !ok {
		return 0
	}
	kept := src.edges[:0]
	for _, e := range src.edges {
		if e.To != to {
			kept = append(kept, e)
		}
	}
	removed := len(src.edges) - len(kept)
	src.edges = kept
	g.edgeCount -= removed

	return removed
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph[T]) HasEdge(from, to ID) bool {
	src, ok := g.vertices[from]
	if !ok {
		return false
	}
	for _, e := range src.edges {
		if e.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns the targets of the outgoing edges of id, in edge order
// and without duplicates.
func (g *Graph[T]) Neighbors(id ID) ([]ID, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	seen := make(map[ID]struct{}, len(v.edges))
	out := make([]ID, 0, len(v.edges))
	for _, e := range v.edges {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}

	return out, nil
}

// EdgeCount returns the number of edges, counting parallel edges.
func (g *Graph[T]) EdgeCount() int { return g.edgeCount }
