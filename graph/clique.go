package graph

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Clique searches treat the graph as undirected: u and v are adjacent when
// an edge exists in either direction. Self-loops are ignored. Vertex sets
// are bitsets indexed by ID, sized by the allocator high-water mark.

// Complete enumerates every clique of exactly size vertices. Each clique is
// returned as an ascending ID slice, and the list is sorted lexicographically.
//
// Vertices whose undirected degree is below size-1 are pruned up front.
// Expansion only ever adds IDs greater than the last member, so every clique
// is produced exactly once in its sorted form.
//
// Cost is exponential in size; keep size and graph order small.
// Returns nil if size <= 0 or size exceeds the vertex count.
func (g *Graph[T]) Complete(size int) [][]ID {
	if size <= 0 || size > g.Len() {
		return nil
	}
	adj, all := g.undirectedAdjacency()

	eligible := bitset.New(uint(g.nextID))
	for i, ok := all.NextSet(0); ok; i, ok = all.NextSet(i + 1) {
		if adj[i].Count() >= uint(size-1) {
			eligible.Set(i)
		}
	}

	var (
		out    [][]ID
		clique = make([]ID, 0, size)
	)
	var expand func(cands *bitset.BitSet)
	expand = func(cands *bitset.BitSet) {
		if len(clique) == size {
			out = append(out, slices.Clone(clique))
			return
		}
		if cands.Count() < uint(size-len(clique)) {
			return
		}
		rest := cands.Clone()
		for i, ok := rest.NextSet(0); ok; i, ok = rest.NextSet(i + 1) {
			rest.Clear(i)
			clique = append(clique, ID(i))
			expand(rest.Intersection(adj[i]))
			clique = clique[:len(clique)-1]
		}
	}
	expand(eligible)

	g.logger.Debug().Int("size", size).Int("cliques", len(out)).Msg("graph: complete subgraphs enumerated")

	return out
}

// BronKerbosch returns one maximum clique as an ascending ID slice, using the
// Bron–Kerbosch algorithm with pivoting. When several maximum cliques exist
// the first one found is returned; pivots and candidates are scanned in
// ascending ID order so the choice is deterministic.
//
// Edges need not be inserted in both directions; adjacency is symmetrised.
// Returns nil for an empty graph.
func (g *Graph[T]) BronKerbosch() []ID {
	if g.Len() == 0 {
		return nil
	}
	adj, all := g.undirectedAdjacency()

	var best, r []ID
	var bk func(p, x *bitset.BitSet)
	bk = func(p, x *bitset.BitSet) {
		if p.None() && x.None() {
			if len(r) > len(best) {
				best = slices.Clone(r)
			}
			return
		}
		// Cannot beat the current best from here.
		if uint(len(r))+p.Count() <= uint(len(best)) {
			return
		}
		// Pivot: the vertex of P ∪ X with most neighbours in P.
		var pivot uint
		most := -1
		px := p.Union(x)
		for u, ok := px.NextSet(0); ok; u, ok = px.NextSet(u + 1) {
			if c := int(p.IntersectionCardinality(adj[u])); c > most {
				most, pivot = c, u
			}
		}
		cands := p.Difference(adj[pivot])
		for v, ok := cands.NextSet(0); ok; v, ok = cands.NextSet(v + 1) {
			r = append(r, ID(v))
			bk(p.Intersection(adj[v]), x.Intersection(adj[v]))
			r = r[:len(r)-1]
			p.Clear(v)
			x.Set(v)
		}
	}
	bk(all, bitset.New(uint(g.nextID)))

	slices.Sort(best)
	g.logger.Debug().Int("size", len(best)).Msg("graph: maximum clique found")

	return best
}

// undirectedAdjacency returns per-vertex neighbour sets indexed by ID (nil
// for removed IDs) and the set of live vertices.
func (g *Graph[T]) undirectedAdjacency() ([]*bitset.BitSet, *bitset.BitSet) {
	n := uint(g.nextID)
	adj := make([]*bitset.BitSet, n)
	all := bitset.New(n)
	for id := range g.vertices {
		adj[id] = bitset.New(n)
		all.Set(uint(id))
	}
	for id, v := range g.vertices {
		for _, e := range v.edges {
			if e.To == id {
				continue
			}
			adj[id].Set(uint(e.To))
			adj[e.To].Set(uint(id))
		}
	}

	return adj, all
}
