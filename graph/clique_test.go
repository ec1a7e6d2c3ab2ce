package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aockit/graph"
)

// connectAll adds undirected unit edges between every pair of ids.
func connectAll(t *testing.T, g *graph.Graph[string], ids ...graph.ID) {
	t.Helper()
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			require.NoError(t, g.AddEdgeBidirectional(ids[i], ids[j], 1))
		}
	}
}

// TestBronKerbosch_K4PlusIsolated expects the K4 and not the isolated vertex.
func TestBronKerbosch_K4PlusIsolated(t *testing.T) {
	g, id := buildLabeled(t, "a", "b", "c", "d", "lonely")
	connectAll(t, g, id["a"], id["b"], id["c"], id["d"])

	best := g.BronKerbosch()
	assert.Equal(t, []graph.ID{id["a"], id["b"], id["c"], id["d"]}, best)
}

func TestBronKerbosch_DirectedEdgesAreSymmetrised(t *testing.T) {
	g, id := buildLabeled(t, "a", "b", "c", "d")
	require.NoError(t, g.AddEdge(id["a"], id["b"], 1))
	require.NoError(t, g.AddEdge(id["c"], id["a"], 1))
	require.NoError(t, g.AddEdge(id["b"], id["c"], 1))
	require.NoError(t, g.AddEdge(id["c"], id["d"], 1))

	assert.Equal(t, []graph.ID{id["a"], id["b"], id["c"]}, g.BronKerbosch())
}

func TestBronKerbosch_IsClique(t *testing.T) {
	// Two overlapping cliques of sizes 4 and 5 sharing one vertex, plus noise.
	g := graph.New[string]()
	ids := make([]graph.ID, 10)
	for i := range ids {
		ids[i] = g.AddVertex("")
	}
	connectAll(t, g, ids[0], ids[1], ids[2], ids[3])
	connectAll(t, g, ids[3], ids[4], ids[5], ids[6], ids[7])
	require.NoError(t, g.AddEdgeBidirectional(ids[8], ids[9], 1))
	require.NoError(t, g.AddEdgeBidirectional(ids[9], ids[0], 1))

	best := g.BronKerbosch()
	assert.Equal(t, []graph.ID{ids[3], ids[4], ids[5], ids[6], ids[7]}, best)
	for i := range best {
		for j := i + 1; j < len(best); j++ {
			assert.True(t, g.HasEdge(best[i], best[j]) || g.HasEdge(best[j], best[i]))
		}
	}
}

func TestBronKerbosch_Trivial(t *testing.T) {
	assert.Nil(t, graph.New[string]().BronKerbosch())

	g, id := buildLabeled(t, "x", "y")
	assert.Len(t, g.BronKerbosch(), 1)
	require.NoError(t, g.AddEdge(id["x"], id["x"], 1))
	assert.Len(t, g.BronKerbosch(), 1, "self-loops do not grow a clique")
}

func TestComplete_Triangles(t *testing.T) {
	g, id := buildLabeled(t, "a", "b", "c", "d", "e")
	connectAll(t, g, id["a"], id["b"], id["c"], id["d"])
	require.NoError(t, g.AddEdgeBidirectional(id["d"], id["e"], 1))

	tri := g.Complete(3)
	assert.Equal(t, [][]graph.ID{
		{id["a"], id["b"], id["c"]},
		{id["a"], id["b"], id["d"]},
		{id["a"], id["c"], id["d"]},
		{id["b"], id["c"], id["d"]},
	}, tri)

	assert.Equal(t, [][]graph.ID{{id["a"], id["b"], id["c"], id["d"]}}, g.Complete(4))
	assert.Nil(t, g.Complete(5))
	assert.Len(t, g.Complete(2), 7, "every edge is a 2-clique")
	assert.Len(t, g.Complete(1), 5)
}

func TestComplete_InvalidSize(t *testing.T) {
	g, _ := buildLabeled(t, "a", "b")
	assert.Nil(t, g.Complete(0))
	assert.Nil(t, g.Complete(-1))
	assert.Nil(t, g.Complete(3))
}

func TestComplete_SkipsRemovedVertices(t *testing.T) {
	g, id := buildLabeled(t, "a", "b", "c", "d")
	connectAll(t, g, id["a"], id["b"], id["c"], id["d"])
	g.RemoveVertex(id["b"])

	assert.Equal(t, [][]graph.ID{{id["a"], id["c"], id["d"]}}, g.Complete(3))
}
