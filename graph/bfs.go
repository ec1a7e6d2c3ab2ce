package graph

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

// BFSResult is the outcome of a breadth-first traversal.
type BFSResult struct {
	Order  []ID       // vertices in the order they were dequeued
	Depth  map[ID]int // edge count from the start vertex
	Parent map[ID]ID  // discovery parent; the start vertex has no entry
}

// BFS explores the graph breadth-first from start, ignoring edge weights.
// Edges are followed in insertion order.
//
// Returns ErrVertexNotFound if start is not live.
// Complexity: O(V + E).
func (g *Graph[T]) BFS(start ID) (*BFSResult, error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, start)
	}
	res := &BFSResult{
		Order:  make([]ID, 0, len(g.vertices)),
		Depth:  map[ID]int{start: 0},
		Parent: make(map[ID]ID),
	}

	queue := arrayqueue.New()
	queue.Enqueue(start)
	for !queue.Empty() {
		item, _ := queue.Dequeue()
		u := item.(ID)
		res.Order = append(res.Order, u)
		for _, e := range g.vertices[u].edges {
			if _, seen := res.Depth[e.To]; seen {
				continue
			}
			res.Depth[e.To] = res.Depth[u] + 1
			res.Parent[e.To] = u
			queue.Enqueue(e.To)
		}
	}

	return res, nil
}

// PathTo reconstructs the unweighted shortest path from the BFS start to
// dest. Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest ID) ([]ID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	path := make([]ID, r.Depth[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
