// Package pairingheap is the module root for a small, focused graph
// toolkit: an addressable pairing heap, the typed node pool backing it,
// a static compressed adjacency-list graph, and a Dijkstra driver tying
// the two together.
//
// Subpackages:
//
//	pool/       — recyclable storage for intrusive tree nodes (Direct,
//	              Hysteresis, LazyShrink policies)
//	pairingheap/ — the addressable pairing heap itself: Push, Top, Pop,
//	              ModifyUp, Modify, with stable generational Handles
//	graph/      — immutable CSR graph and its two-phase Builder
//	dijkstra/   — single-source shortest paths over graph.Graph, driven
//	              by pairingheap.Heap with an external distance metric
//
// Unlike a general-purpose graph library, this module intentionally does
// not provide mutable graphs, traversal algorithms beyond Dijkstra, or
// serialization — see each subpackage's doc comment for what it covers
// and why.
//
//	go get github.com/katalvlaran/pairingheap
package pairingheap
