package graph_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aockit/graph"
)

// TestGraph_AddVertexAllocatesFreshIDs verifies IDs are monotonic and never reused.
func TestGraph_AddVertexAllocatesFreshIDs(t *testing.T) {
	g := graph.New[int]()
	a := g.AddVertex(10)
	b := g.AddVertex(20, graph.WithLabel("b"))
	assert.Equal(t, graph.ID(0), a)
	assert.Equal(t, graph.ID(1), b)

	g.RemoveVertex(b)
	c := g.AddVertex(30)
	assert.Equal(t, graph.ID(2), c, "removed ids must not be reused")
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []graph.ID{a, c}, g.Vertices())

	v, ok := g.Vertex(c)
	require.True(t, ok)
	assert.Equal(t, 30, v.Data)
	assert.Equal(t, c, v.ID())
	assert.Empty(t, v.Label)

	_, ok = g.Vertex(b)
	assert.False(t, ok)
}

// TestGraph_IDsScopedPerInstance verifies two graphs allocate independently.
func TestGraph_IDsScopedPerInstance(t *testing.T) {
	g1 := graph.New[string]()
	g2 := graph.New[string]()
	g1.AddVertex("x")
	g1.AddVertex("y")
	assert.Equal(t, graph.ID(0), g2.AddVertex("z"))
}

func TestGraph_AddEdgeValidatesEndpoints(t *testing.T) {
	g := graph.New[string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")

	require.NoError(t, g.AddEdge(a, b, 3))
	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a), "edges are directional")

	err := g.AddEdge(a, 99, 1)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	err = g.AddEdge(99, a, 1)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	assert.Equal(t, 1, g.EdgeCount())

	va, _ := g.Vertex(a)
	assert.Equal(t, []graph.Edge{{To: b, Weight: 3}}, va.Edges())
}

func TestGraph_ParallelEdgesAndSelfLoops(t *testing.T) {
	g := graph.New[string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(a, b, 5))
	require.NoError(t, g.AddEdge(a, a, 0))

	va, _ := g.Vertex(a)
	assert.Equal(t, 3, va.OutDegree())
	nbrs, err := g.Neighbors(a)
	require.NoError(t, err)
	assert.Equal(t, []graph.ID{b, a}, nbrs)

	assert.Equal(t, 2, g.RemoveEdge(a, b))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 0, g.RemoveEdge(a, b))
	assert.Equal(t, 0, g.RemoveEdge(42, b))

	_, err = g.Neighbors(42)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

// TestGraph_BidirectionalAtomic checks that a failed reverse insert leaves
// no edge behind.
func TestGraph_BidirectionalAtomic(t *testing.T) {
	g := graph.New[string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")

	err := g.AddEdgeBidirectional(a, 77, 4)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	err = g.AddEdgeBidirectional(77, a, 4)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	assert.Equal(t, 0, g.EdgeCount())
	va, _ := g.Vertex(a)
	assert.Empty(t, va.Edges())

	require.NoError(t, g.AddEdgeBidirectional(a, b, 4))
	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a))
	assert.Equal(t, 2, g.EdgeCount())
}

// TestGraph_RemoveVertexCascade checks that every edge into a removed vertex
// goes with it and unrelated edges stay.
func TestGraph_RemoveVertexCascade(t *testing.T) {
	g := graph.New[string]()
	target := g.AddVertex("target")
	other := g.AddVertex("other")
	srcs := []graph.ID{g.AddVertex("s1"), g.AddVertex("s2"), g.AddVertex("s3")}
	for _, s := range srcs {
		require.NoError(t, g.AddEdge(s, target, 1))
		require.NoError(t, g.AddEdge(s, other, 2))
	}
	require.NoError(t, g.AddEdge(target, other, 1))
	assert.Equal(t, 7, g.EdgeCount())

	g.RemoveVertex(target)

	assert.False(t, g.HasVertex(target))
	for _, s := range srcs {
		v, ok := g.Vertex(s)
		require.True(t, ok)
		assert.Equal(t, []graph.Edge{{To: other, Weight: 2}}, v.Edges(), "vertex %d", s)
	}
	assert.Equal(t, 3, g.EdgeCount())

	// Lookups against the removed id fail gracefully.
	assert.ErrorIs(t, g.AddEdge(srcs[0], target, 1), graph.ErrVertexNotFound)
	_, err := g.Dijkstra(target)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)

	// Removing again is a no-op.
	g.RemoveVertex(target)
	assert.Equal(t, 4, g.Len())
}

func TestGraph_FindByLabel(t *testing.T) {
	g := graph.New[int]()
	g.AddVertex(1, graph.WithLabel("x"))
	dup1 := g.AddVertex(2, graph.WithLabel("dup"))
	g.AddVertex(3, graph.WithLabel("dup"))

	v, ok := g.FindByLabel("dup")
	require.True(t, ok)
	assert.Equal(t, dup1, v.ID(), "lowest id wins for duplicate labels")

	_, ok = g.FindByLabel("missing")
	assert.False(t, ok)
}

func TestGraph_Marks(t *testing.T) {
	g := graph.New[int]()
	a := g.AddVertex(0)
	v, _ := g.Vertex(a)
	assert.False(t, v.Marked())
	v.SetMark(true)
	assert.True(t, v.Marked())
	g.ClearMarks()
	assert.False(t, v.Marked())
}

func TestGraph_LoggerReceivesRemovalEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	g := graph.New[int](graph.WithLogger(logger))
	a := g.AddVertex(0)
	b := g.AddVertex(1)
	require.NoError(t, g.AddEdge(b, a, 1))

	g.RemoveVertex(a)

	out := buf.String()
	assert.Contains(t, out, `"message":"graph: vertex removed"`)
	assert.Contains(t, out, `"incoming":1`)
}
