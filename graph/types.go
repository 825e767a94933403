package graph

import "errors"

// Sentinel errors returned by Builder, following this module's general
// convention of package-level values suitable for errors.Is.
var (
	// ErrNegativeNumNodes indicates NewBuilder was called with a
	// negative node count.
	ErrNegativeNumNodes = errors.New("graph: numNodes must be non-negative")

	// ErrNodeOutOfRange indicates AddEdge referenced a node id outside
	// [0, numNodes).
	ErrNodeOutOfRange = errors.New("graph: node id out of range")
)

// Graph is an immutable, compressed adjacency-list graph over node ids
// [0, NumNodes()). Construct one with Builder.Build; there is no mutation
// API on Graph itself, and no internal locking — concurrent readers are
// safe since nothing ever changes after Build returns.
type Graph[D any] struct {
	numNodes int
	offsets  []int // length numNodes+1, CSR row pointers
	targets  []int // length NumEdges(), target node per edge
	data     []D   // length NumEdges(), payload per edge
}

// NumNodes returns the number of nodes the graph was built with.
func (g *Graph[D]) NumNodes() int { return g.numNodes }

// NumEdges returns the total number of edges.
func (g *Graph[D]) NumEdges() int { return len(g.targets) }

// OutDegree returns the number of outgoing edges from v.
func (g *Graph[D]) OutDegree(v int) int { return g.EndEdges(v) - g.BeginEdges(v) }

// BeginEdges returns the index of the first edge leaving v (inclusive).
func (g *Graph[D]) BeginEdges(v int) int { return g.offsets[v] }

// EndEdges returns the index one past the last edge leaving v (exclusive).
func (g *Graph[D]) EndEdges(v int) int { return g.offsets[v+1] }

// Target returns the destination node of edge e.
func (g *Graph[D]) Target(e int) int { return g.targets[e] }

// EdgeData returns the payload of edge e.
func (g *Graph[D]) EdgeData(e int) D { return g.data[e] }

// EdgesOf returns the half-open range of edge indices [begin, end) leaving
// v, equivalent to BeginEdges(v), EndEdges(v) — a convenience for the
// common `for e := begin; e < end; e++` traversal idiom.
func (g *Graph[D]) EdgesOf(v int) (begin, end int) {
	return g.BeginEdges(v), g.EndEdges(v)
}
