// Package pairingheap implements an addressable pairing heap: a mergeable
// priority queue that, beyond the usual push/top/pop, hands back a stable
// Handle for every inserted element and supports in-place key changes in
// both directions — the easy "toward the top" case (ModifyUp) and the
// general case that may need repairing the heap property downward
// (Modify).
//
// The heap is built on an intrusive multi-way tree (see link.go) whose
// storage is recycled through a pool.Pool[T] (package pool) rather than
// allocated and freed node-by-node. Consolidation — the pairing pass that
// keeps the root count small and finds the new minimum — runs lazily, only
// when Top or Pop actually needs the extremum, rather than eagerly after
// every merge.
//
// External-metric comparator. Unlike a typical textbook heap, the keys
// stored here need not be self-contained: Comparator[T] is a capability
// the heap consults on every comparison, and it may carry arbitrary mutable
// state — an array of distances indexed by node id, for the Dijkstra
// driver in package dijkstra. The caller is free to mutate that state
// between heap calls, as long as the next call affecting a handle whose
// ordering changed is ModifyUp or Modify so the heap relearns the new
// order. The heap never inspects keys except through the comparator.
//
// This package has no locks and makes no concurrency claims: every
// operation runs to completion before another may begin, and the heap is
// meant to be used from a single goroutine at a time.
package pairingheap
