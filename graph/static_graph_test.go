package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BuildLaysOutCSR(t *testing.T) {
	b := NewBuilder[uint64](4)
	require.NoError(t, b.AddEdge(0, 1, 5))
	require.NoError(t, b.AddEdge(0, 2, 3))
	require.NoError(t, b.AddEdge(1, 2, 1))
	require.NoError(t, b.AddEdge(2, 3, 7))

	g := b.Build()

	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 4, g.NumEdges())

	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, 1, g.OutDegree(1))
	assert.Equal(t, 1, g.OutDegree(2))
	assert.Equal(t, 0, g.OutDegree(3))

	begin, end := g.EdgesOf(0)
	var targets []int
	for e := begin; e < end; e++ {
		targets = append(targets, g.Target(e))
	}
	assert.ElementsMatch(t, []int{1, 2}, targets)
}

func TestBuilder_DropsSelfLoops(t *testing.T) {
	b := NewBuilder[uint64](2)
	require.NoError(t, b.AddEdge(0, 0, 1))
	require.NoError(t, b.AddEdge(0, 1, 2))

	g := b.Build()

	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, 1, g.OutDegree(0))
}

func TestBuilder_DropsDuplicateEdgesKeepingFirst(t *testing.T) {
	b := NewBuilder[uint64](2)
	require.NoError(t, b.AddEdge(0, 1, 100))
	require.NoError(t, b.AddEdge(0, 1, 200))

	g := b.Build()

	require.Equal(t, 1, g.NumEdges())
	assert.Equal(t, uint64(100), g.EdgeData(0))
}

func TestBuilder_AddEdgeRejectsOutOfRangeNodes(t *testing.T) {
	b := NewBuilder[uint64](2)

	assert.ErrorIs(t, b.AddEdge(-1, 0, 1), ErrNodeOutOfRange)
	assert.ErrorIs(t, b.AddEdge(0, 2, 1), ErrNodeOutOfRange)
}

func TestBuilder_EmptyGraph(t *testing.T) {
	b := NewBuilder[uint64](3)
	g := b.Build()

	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
	for v := 0; v < 3; v++ {
		assert.Equal(t, 0, g.OutDegree(v))
	}
}

func TestNewBuilder_PanicsOnNegativeNumNodes(t *testing.T) {
	assert.Panics(t, func() { NewBuilder[uint64](-1) })
}

func TestBuilder_AcceptsEdgesInAnyOrder(t *testing.T) {
	b := NewBuilder[uint64](3)
	require.NoError(t, b.AddEdge(2, 0, 9))
	require.NoError(t, b.AddEdge(0, 1, 4))
	require.NoError(t, b.AddEdge(1, 2, 2))

	g := b.Build()

	begin, end := g.EdgesOf(2)
	require.Equal(t, 1, end-begin)
	assert.Equal(t, 0, g.Target(begin))
	assert.Equal(t, uint64(9), g.EdgeData(begin))
}
