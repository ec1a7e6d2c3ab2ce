// Package graph provides an arena-backed, labeled, directed multigraph and
// the search and enumeration algorithms that puzzle solvers run on it.
//
// Model:
//
//   - A Graph owns all of its vertices in one map keyed by ID. Edges name
//     their target by ID, never by pointer, so there are no ownership cycles.
//   - IDs come from a per-Graph counter starting at 0 and are never reused,
//     even after RemoveVertex. IDs from different graphs must not be mixed.
//   - Vertices carry a caller payload (Data), an optional Label and a
//     transient mark bit. Edges carry an int64 weight.
//   - Bidirectional connections are two independent edges.
//
// Construction:
//
//	g := graph.New[string]()
//	a := g.AddVertex("a", graph.WithLabel("A"))
//	b := g.AddVertex("b", graph.WithLabel("B"))
//	_ = g.AddEdgeBidirectional(a, b, 1)
//
// Algorithms:
//
//	Dijkstra(start)              map ID→distance, Unreachable for the rest   O((V+E) log V)
//	AllShortestPaths(start, end) every shortest path, start→end order        O((V+E) log V + P·L)
//	BFS(start)                   unweighted order, depth and parents          O(V+E)
//	CountPaths(start, end)       number of paths in a DAG                     O(V+E)
//	TopologicalSort()            order with u before v for every edge u→v     O(V log V+E)
//	Complete(size)               every clique of exactly size vertices        exponential
//	BronKerbosch()               one maximum clique                           exponential
//
// Errors:
//
//   - Read-only lookups (Vertex, FindByLabel) report absence with a bool.
//   - Mutations and searches return sentinel errors (ErrVertexNotFound,
//     ErrNegativeWeight, ErrNoPath, ErrCycleDetected), wrapped with the
//     offending IDs; test with errors.Is.
//   - AddEdgeBidirectional is all-or-nothing.
//
// Concurrency:
//
//   - A Graph has no internal locking. Every call runs to completion on the
//     calling goroutine; share a Graph only behind an external mutex.
//
// Logging:
//
//   - Pass WithLogger(zerolog.Logger) to New to receive debug events.
//     Nothing is logged by default.
package graph
