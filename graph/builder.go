package graph

import "sort"

// inputEdge is the Builder's accumulation-phase representation of a single
// (from, to, data) tuple, before sorting and CSR layout.
type inputEdge[D any] struct {
	from, to int
	data     D
}

// Builder accumulates edges in any order and freezes them into an
// immutable Graph. The zero value is not usable; construct one with
// NewBuilder.
type Builder[D any] struct {
	numNodes int
	edges    []inputEdge[D]
}

// NewBuilder returns a Builder for a graph with numNodes nodes, numbered
// [0, numNodes). It panics if numNodes is negative — this is a programmer
// error, not a runtime condition callers should need to handle.
func NewBuilder[D any](numNodes int) *Builder[D] {
	if numNodes < 0 {
		panic(ErrNegativeNumNodes)
	}

	return &Builder[D]{numNodes: numNodes}
}

// AddEdge queues a directed edge from -> to carrying data. Edges may be
// added in any order and Build is free to reorder them; duplicate
// (from, to) pairs and self-loops (from == to) are silently dropped at
// Build time as part of normalising the edge set before CSR layout.
func (b *Builder[D]) AddEdge(from, to int, data D) error {
	if from < 0 || from >= b.numNodes || to < 0 || to >= b.numNodes {
		return ErrNodeOutOfRange
	}

	b.edges = append(b.edges, inputEdge[D]{from: from, to: to, data: data})

	return nil
}

// Build sorts the accumulated edges by (from, to), drops self-loops and
// duplicate (from, to) pairs (keeping the first one added, in insertion
// order among ties), and lays out the resulting CSR arrays. The Builder
// may be reused for a further round of AddEdge/Build calls afterward; each
// Build call operates on an independent snapshot of the accumulated edges.
//
// Grounded in the node_offsets/edge_array two-array layout of the original
// StaticGraph constructor (pq/addressable/static_graph.hpp): a node's
// out-edges occupy a contiguous run of the edges array, located by a single
// extra offset per node.
func (b *Builder[D]) Build() *Graph[D] {
	sorted := make([]inputEdge[D], len(b.edges))
	copy(sorted, b.edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].from != sorted[j].from {
			return sorted[i].from < sorted[j].from
		}

		return sorted[i].to < sorted[j].to
	})

	filtered := make([]inputEdge[D], 0, len(sorted))
	for _, e := range sorted {
		if e.from == e.to {
			continue
		}
		if n := len(filtered); n > 0 && filtered[n-1].from == e.from && filtered[n-1].to == e.to {
			continue
		}
		filtered = append(filtered, e)
	}

	offsets := make([]int, b.numNodes+1)
	for _, e := range filtered {
		offsets[e.from+1]++
	}
	for i := 1; i <= b.numNodes; i++ {
		offsets[i] += offsets[i-1]
	}

	targets := make([]int, len(filtered))
	data := make([]D, len(filtered))
	for i, e := range filtered {
		targets[i] = e.to
		data[i] = e.data
	}

	return &Graph[D]{
		numNodes: b.numNodes,
		offsets:  offsets,
		targets:  targets,
		data:     data,
	}
}
