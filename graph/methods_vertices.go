package graph

import (
	"slices"

	"golang.org/x/exp/maps"
)

// AddVertex stores data in a new vertex and returns its freshly allocated ID.
// It always succeeds.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(data T, opts ...VertexOption) ID {
	var cfg vertexOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	id := g.nextID
	g.nextID++
	g.vertices[id] = &Vertex[T]{id: id, Data: data, Label: cfg.label}

	return id
}

// Vertex returns the vertex with the given id.
// ok is false if id was never allocated or has been removed.
func (g *Graph[T]) Vertex(id ID) (v *Vertex[T], ok bool) {
	v, ok = g.vertices[id]
	return v, ok
}

// HasVertex reports whether id resolves to a live vertex.
func (g *Graph[T]) HasVertex(id ID) bool {
	_, ok := g.vertices[id]
	return ok
}

// FindByLabel returns the vertex carrying label. Labels are not required to
// be unique; when several vertices share a label the one with the lowest ID
// is returned.
// Complexity: O(V log V).
func (g *Graph[T]) FindByLabel(label string) (*Vertex[T], bool) {
	for _, id := range g.Vertices() {
		if v := g.vertices[id]; v.Label == label {
			return v, true
		}
	}

	return nil, false
}

// RemoveVertex deletes the vertex id together with its outgoing edges and
// every edge elsewhere in the graph that targets it. Removing an unknown id
// is a no-op.
// Complexity: O(V + E).
func (g *Graph[T]) RemoveVertex(id ID) {
	v, ok := g.vertices[id]
	if !ok {
		return
	}
	g.edgeCount -= len(v.edges)
	delete(g.vertices, id)

	incoming := 0
	for _, u := range g.vertices {
		kept := u.edges[:0]
		for _, e := range u.edges {
			if e.To == id {
				incoming++
				continue
			}
			kept = append(kept, e)
		}
		u.edges = kept
	}
	g.edgeCount -= incoming

	g.logger.Debug().
		Uint64("vertex", uint64(id)).
		Int("outgoing", len(v.edges)).
		Int("incoming", incoming).
		Msg("graph: vertex removed")
}

// Vertices returns the IDs of all live vertices in ascending order.
// Complexity: O(V log V).
func (g *Graph[T]) Vertices() []ID {
	ids := maps.Keys(g.vertices)
	slices.Sort(ids)

	return ids
}

// Len returns the number of live vertices.
func (g *Graph[T]) Len() int { return len(g.vertices) }

// ClearMarks resets the mark bit of every vertex.
func (g *Graph[T]) ClearMarks() {
	for _, v := range g.vertices {
		v.mark = false
	}
}
