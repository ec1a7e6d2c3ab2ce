package graph

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/aockit/coord"
)

// Dijkstra computes the shortest distance from start to every vertex.
//
// Returns:
//
//   - dist: map from every live vertex ID to its minimum distance from start,
//     or Unreachable if no path exists.
//   - err:  ErrVertexNotFound if start is not live, ErrNegativeWeight if any
//     edge has a negative weight (detected by an O(E) pre-scan).
//
// Equal-distance heap entries pop in ascending ID order, so the result does
// not depend on map iteration order. Distance sums saturate instead of
// wrapping; a sum that reaches Unreachable is treated as no path.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under the lazy decrease-key strategy.
func (g *Graph[T]) Dijkstra(start ID) (map[ID]int64, error) {
	r, err := g.newRunner(start)
	if err != nil {
		return nil, err
	}
	r.process()

	return r.dist, nil
}

// runner holds the mutable state of one Dijkstra execution.
type runner[T any] struct {
	g       *Graph[T]
	dist    map[ID]int64 // best known distance from the source
	visited map[ID]bool  // finalized vertices
	pq      nodePQ
}

// newRunner validates the input and seeds the heap with start at distance 0.
func (g *Graph[T]) newRunner(start ID) (*runner[T], error) {
	// 1) The source must exist.
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, start)
	}

	// 2) Fail fast on negative weights.
	for _, v := range g.vertices {
		for _, e := range v.edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, v.id, e.To, e.Weight)
			}
		}
	}

	// 3) Every vertex starts unreachable; the source is at zero.
	r := &runner[T]{
		g:       g,
		dist:    make(map[ID]int64, len(g.vertices)),
		visited: make(map[ID]bool, len(g.vertices)),
		pq:      make(nodePQ, 0, len(g.vertices)),
	}
	for id := range g.vertices {
		r.dist[id] = Unreachable
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	return r, nil
}

// process pops the closest unfinalized vertex until the heap drains.
func (r *runner[T]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		// Stale entry left behind by a later, shorter push.
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve the distance of each target of u's outgoing edges.
func (r *runner[T]) relax(u ID) {
	for _, e := range r.g.vertices[u].edges {
		if r.visited[e.To] {
			continue
		}
		newDist := coord.SaturatingAdd(r.dist[u], e.Weight)
		// A sum that reaches the sentinel is not a real distance.
		if newDist == Unreachable || newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   ID
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
