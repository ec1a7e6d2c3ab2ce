package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aockit/graph"
)

func TestBFS_OrderDepthAndPath(t *testing.T) {
	g, id := buildLabeled(t, "A", "B", "C", "D", "E")
	require.NoError(t, g.AddEdge(id["A"], id["B"], 100))
	require.NoError(t, g.AddEdge(id["A"], id["C"], 1))
	require.NoError(t, g.AddEdge(id["B"], id["D"], 1))
	require.NoError(t, g.AddEdge(id["C"], id["D"], 1))

	res, err := g.BFS(id["A"])
	require.NoError(t, err)
	assert.Equal(t, []graph.ID{id["A"], id["B"], id["C"], id["D"]}, res.Order)
	assert.Equal(t, 2, res.Depth[id["D"]])
	assert.Equal(t, id["B"], res.Parent[id["D"]], "first discovery wins")

	path, err := res.PathTo(id["D"])
	require.NoError(t, err)
	assert.Equal(t, []graph.ID{id["A"], id["B"], id["D"]}, path)

	path, err = res.PathTo(id["A"])
	require.NoError(t, err)
	assert.Equal(t, []graph.ID{id["A"]}, path)

	_, err = res.PathTo(id["E"])
	assert.ErrorIs(t, err, graph.ErrNoPath)

	_, err = g.BFS(99)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestCountPaths_DAG(t *testing.T) {
	g, id := buildLabeled(t, "you", "a", "b", "c", "out")
	for _, e := range [][2]string{
		{"you", "a"}, {"you", "b"}, {"a", "c"}, {"b", "c"},
		{"a", "out"}, {"c", "out"},
	} {
		require.NoError(t, g.AddEdge(id[e[0]], id[e[1]], 1))
	}

	n, err := g.CountPaths(id["you"], id["out"])
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)

	n, err = g.CountPaths(id["out"], id["you"])
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = g.CountPaths(id["a"], id["a"])
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}

func TestCountPaths_ParallelEdgesCountSeparately(t *testing.T) {
	g, id := buildLabeled(t, "A", "B")
	require.NoError(t, g.AddEdge(id["A"], id["B"], 1))
	require.NoError(t, g.AddEdge(id["A"], id["B"], 2))

	n, err := g.CountPaths(id["A"], id["B"])
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
}

func TestCountPaths_Cycle(t *testing.T) {
	g, id := buildLabeled(t, "A", "B", "C", "D")
	require.NoError(t, g.AddEdge(id["A"], id["B"], 1))
	require.NoError(t, g.AddEdge(id["B"], id["C"], 1))
	require.NoError(t, g.AddEdge(id["C"], id["B"], 1))
	require.NoError(t, g.AddEdge(id["C"], id["D"], 1))

	_, err := g.CountPaths(id["A"], id["D"])
	assert.ErrorIs(t, err, graph.ErrCycleDetected)

	_, err = g.CountPaths(id["A"], 99)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestCountPaths_Saturates(t *testing.T) {
	// A chain of 70 diamonds has 2^70 routes.
	g := graph.New[int]()
	prev := g.AddVertex(0)
	start := prev
	for i := 0; i < 70; i++ {
		l, r, next := g.AddVertex(0), g.AddVertex(0), g.AddVertex(0)
		require.NoError(t, g.AddEdge(prev, l, 1))
		require.NoError(t, g.AddEdge(prev, r, 1))
		require.NoError(t, g.AddEdge(l, next, 1))
		require.NoError(t, g.AddEdge(r, next, 1))
		prev = next
	}

	n, err := g.CountPaths(start, prev)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), n)
}
