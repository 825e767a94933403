// Package pairingheap: sentinel errors, the Comparator contract, the
// external-metric comparator helper, and the Handle type.
package pairingheap

import (
	"errors"

	"github.com/katalvlaran/pairingheap/pool"
)

// Sentinel errors for precondition violations. These represent programmer
// errors, not recoverable runtime conditions: the core panics with the
// sentinel as the panic value rather than returning an error, so a caller
// that wants to treat misuse as recoverable can `recover` and compare with
// errors.Is.
var (
	// ErrEmptyHeap indicates Top or Pop was called on a heap with Size()==0.
	ErrEmptyHeap = errors.New("pairingheap: operation on empty heap")

	// ErrInvalidHandle indicates a Handle that refers to no live element:
	// one already removed (Pop'd), or never pushed — the zero Handle. A
	// live Handle taken from a different heap is not detected.
	ErrInvalidHandle = errors.New("pairingheap: invalid or stale handle")
)

// Comparator defines the strict weak ordering the heap consults on every
// comparison. Less(a, b) reports whether a is strictly "closer to the top"
// than b — smaller, for the conventional min-heap reading used throughout
// this package's documentation and tests.
//
// Implementations may carry mutable interior state (see ExternalMetric)
// but must be deterministic for a fixed state, and must never call back
// into the heap from within Less.
type Comparator[T any] interface {
	Less(a, b T) bool
}

// ComparatorFunc adapts a plain function to the Comparator interface, for
// callers whose ordering needs no external state.
type ComparatorFunc[T any] func(a, b T) bool

// Less calls f(a, b).
func (f ComparatorFunc[T]) Less(a, b T) bool { return f(a, b) }

// ExternalMetric is a comparator whose key stored in the heap is an index
// into a caller-owned slice of metric values, and whose ordering compares
// those values rather than the indices themselves. The Dijkstra driver in
// package dijkstra uses this directly, keying the heap by node id and
// comparing current distances.
//
// ExternalMetric carries no lock: the owner must update Dist between heap
// calls, never concurrently with one, and must call ModifyUp/Modify on any
// handle whose distance changed before relying on the heap's ordering
// again.
type ExternalMetric[K ~int] struct {
	// Dist holds the current metric value for each key (node id). The
	// driver owns this slice; the heap only reads it through Less.
	Dist []uint64
}

// Less reports whether Dist[a] < Dist[b].
func (m *ExternalMetric[K]) Less(a, b K) bool {
	return m.Dist[a] < m.Dist[b]
}

// Handle is an opaque, stable reference to a single live element: valid
// from the Push that created it until the Pop that removes it. Handles
// remain valid
// across all other operations on the same heap, including pool grow and
// shrink, because they pair a node pointer with the generation the pool
// stamped on that node at acquisition time (see pool.Node.Gen) — reusing
// the underlying storage for a different element bumps the generation, so
// a stale Handle is detected rather than silently aliasing the wrong node.
//
// The zero Handle is never valid and is safe to use as a sentinel for "no
// element pushed yet" (see dijkstra's per-node handle table).
type Handle[T any] struct {
	node *pool.Node[T]
	gen  uint64
}

// valid reports whether h still names a live node: non-nil and carrying
// the generation the pool last stamped on it.
func (h Handle[T]) valid() bool {
	return h.node != nil && h.node.Gen == h.gen
}
