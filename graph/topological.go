package graph

import "fmt"

// Visitation colours for depth-first traversals.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[T any] struct {
	g     *Graph[T]
	state map[ID]int
	order []ID // post-order
}

// TopologicalSort orders all vertices so that for every edge u→v, u appears
// before v. Roots are tried in ascending ID order and edges in insertion
// order, so the result is deterministic.
//
// Returns ErrCycleDetected (wrapped with the vertex that closed the cycle)
// if the graph is not acyclic; no partial order is returned. Self-loops are
// cycles.
//
// Complexity: O(V log V + E) time, O(V) memory.
func (g *Graph[T]) TopologicalSort() ([]ID, error) {
	// 1. Initialize sorter state
	verts := g.Vertices()
	s := &topoSorter[T]{
		g:     g,
		state: make(map[ID]int, len(verts)),
		order: make([]ID, 0, len(verts)),
	}
	// 2. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if s.state[v] == white {
			if err := s.visit(v); err != nil {
				g.logger.Debug().Err(err).Msg("graph: topological sort aborted")
				return nil, err
			}
		}
	}
	// 3. Reverse post-order to produce topological order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (s *topoSorter[T]) visit(id ID) error {
	switch s.state[id] {
	case gray:
		return fmt.Errorf("%w: at vertex %d", ErrCycleDetected, id)
	case black:
		return nil
	}
	s.state[id] = gray
	for _, e := range s.g.vertices[id].edges {
		if err := s.visit(e.To); err != nil {
			return err
		}
	}
	s.state[id] = black
	s.order = append(s.order, id)

	return nil
}
