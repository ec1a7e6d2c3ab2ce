// Package graph defines the Graph, Vertex and Edge types, sentinel errors,
// and the functional options used to construct a Graph.
//
// Errors:
//
//	ErrVertexNotFound - an identifier does not resolve to a live vertex.
//	ErrNegativeWeight - a search requiring non-negative weights met a negative edge.
//	ErrNoPath         - the target is unreachable from the source.
//	ErrCycleDetected  - an ordering or path count was requested on a cyclic graph.
package graph

import (
	"errors"
	"math"

	"github.com/rs/zerolog"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that was
	// never allocated or has been removed.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNegativeWeight indicates a negative edge weight met by a shortest-path search.
	ErrNegativeWeight = errors.New("graph: negative edge weight encountered")

	// ErrNoPath indicates the end vertex cannot be reached from the start vertex.
	ErrNoPath = errors.New("graph: no path between vertices")

	// ErrCycleDetected indicates a cycle reachable by TopologicalSort or CountPaths.
	ErrCycleDetected = errors.New("graph: cycle detected")
)

// Unreachable is the distance Dijkstra reports for vertices that cannot be
// reached from the source.
const Unreachable int64 = math.MaxInt64

// ID identifies a vertex within one Graph. IDs are allocated from 0 upward
// and never reused, even after removal. They carry no meaning outside the
// Graph that issued them.
type ID uint64

// Edge is a directed, weighted connection to the vertex To.
// It lives in the outgoing edge list of its source vertex.
type Edge struct {
	To     ID    // target vertex
	Weight int64 // cost; searches assume non-negative values
}

// Vertex is a node owned by exactly one Graph.
//
// Data carries the caller payload. Label is an optional display name; its
// uniqueness is a caller convention that the Graph does not enforce.
type Vertex[T any] struct {
	id    ID
	Data  T
	Label string
	mark  bool
	edges []Edge
}

// ID returns the identifier of v.
func (v *Vertex[T]) ID() ID { return v.id }

// Edges returns a copy of the outgoing edges of v in insertion order.
func (v *Vertex[T]) Edges() []Edge {
	out := make([]Edge, len(v.edges))
	copy(out, v.edges)

	return out
}

// OutDegree returns the number of outgoing edges, counting parallel edges.
func (v *Vertex[T]) OutDegree() int { return len(v.edges) }

// Marked reports the transient mark bit.
func (v *Vertex[T]) Marked() bool { return v.mark }

// SetMark sets the transient mark bit. Algorithms in this package never
// read or write it; it is reserved for callers.
func (v *Vertex[T]) SetMark(m bool) { v.mark = m }

// Graph is a mutable, labeled, directed multigraph. Vertices are stored in
// one arena keyed by ID and edges refer to their target by ID only.
//
// Graph is not safe for concurrent mutation; callers that share a Graph
// across goroutines must serialise access themselves.
type Graph[T any] struct {
	vertices  map[ID]*Vertex[T]
	nextID    ID
	edgeCount int
	logger    zerolog.Logger
}

// Option configures a Graph at construction time.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger routes debug events (removal cascades, detected cycles, clique
// search summaries) to l. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// VertexOption configures a vertex in AddVertex.
type VertexOption func(*vertexOptions)

type vertexOptions struct {
	label string
}

// WithLabel attaches a display label to the new vertex.
func WithLabel(label string) VertexOption {
	return func(o *vertexOptions) { o.label = label }
}

// New creates an empty Graph.
// Complexity: O(1)
func New[T any](opts ...Option) *Graph[T] {
	cfg := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		vertices: make(map[ID]*Vertex[T]),
		logger:   cfg.logger,
	}
}
