// Package pool provides recycled storage for the intrusive tree nodes used
// by package pairingheap.
//
// A Node[T] is the element the pool hands out: a key cell plus the
// parent/sibling/first-child links that pairingheap threads into a
// multi-way tree. The pool owns allocation and reuse; pairingheap owns the
// meaning of the links.
//
// Three interchangeable policies are provided, all satisfying Pool[T]:
//
//   - Direct: forwards straight to the Go allocator on every Acquire/Release.
//     Baseline for comparison; no hysteresis, no over-allocation.
//   - Hysteresis: grows/shrinks capacity by a percentage band (grow%, shrink%)
//     so that bursts of Acquire/Release do not thrash the allocator.
//   - LazyShrink: grows by exactly one node on demand; frees eagerly on
//     Release only once size drops comfortably below capacity.
//
// Released nodes are threaded onto a LIFO free list through the node's own
// NextSibling slot — the same trick the pairing heap itself uses to avoid
// a second allocation per node. Release zeroes a node's key and every
// link before returning it to the free list (or discarding it, for
// LazyShrink's eager-free path), so a node freshly handed back by Acquire
// is always in a known, empty state.
//
// Handles. pairingheap hands out Handle values that must stay valid across
// Acquire/Release cycles that reuse the same slot. Rather than a separate
// generational-slot wrapper, each Node carries its own Gen counter, bumped
// by the owning pool every time that node is released and again when it is
// handed out from a free list. pairingheap.Handle pairs a *Node[T] with the
// generation it observed at Push time, so a handle used after its node was
// released, or reused for a different element, is detected rather than
// silently aliasing.
package pool
