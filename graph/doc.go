// Package graph implements a static, compressed adjacency-list graph: an
// immutable CSR (compressed sparse row) structure built once from a sorted,
// deduplicated edge list, queried many times. It is the Go counterpart of
// StaticGraph in the original OSRM-derived reference
// (pq/addressable/static_graph.hpp), generalized with a Go generic EdgeData
// payload in place of the C++ template parameter.
//
// Construction is two-phase: a Builder accumulates (from, to, data) tuples
// in any order via AddEdge, then Build freezes them into a Graph — sorting
// by (from, to), dropping duplicate (from, to) pairs and self-loops, and
// laying out the two CSR arrays node_offsets[0..=N] and edges[0..M). This
// gives every caller a documented path to a sorted, deduplicated edge list
// without hand-rolling that normalisation at each call site; it is the
// minimal glue needed to reach the static graph's own precondition, not a
// general-purpose adapter or CLI layer.
//
// A Graph is immutable after Build: there is no AddEdge, RemoveEdge or
// lock anywhere on Graph itself — construction and querying are cleanly
// separated phases.
package graph
