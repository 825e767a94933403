// Package dijkstra computes single-source shortest paths over a static
// graph.Graph[uint64], using an addressable pairingheap.Heap as its
// priority queue and an external-metric comparator so the heap never
// copies the distance array it orders by.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • each vertex is popped at most once: V pops.
//	   • each edge relaxation is at most one Push or one ModifyUp: up to E of each.
//	   • each heap operation costs O(log V).
//	– Space: O(V + E): O(V) for dist/prev/handle, O(E) implicit in the tree shape.
//
// Unlike the general-purpose implementation this one was adapted from,
// edge weights here are uint64 and therefore never negative, so there is
// no upfront negative-weight scan and no ErrNegativeWeight.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/pairingheap/pairingheap"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that source is not a valid node id for
	// the given graph, i.e. not in [0, g.NumNodes()).
	ErrSourceOutOfRange = errors.New("dijkstra: source out of range")
)

// Options configures a single Run call.
type Options struct {
	// ReturnPath requests that Result.Prev be populated for path
	// reconstruction. Left false, Prev is nil to avoid the allocation.
	ReturnPath bool

	// MaxDistance caps exploration: once the heap's minimum distance
	// exceeds MaxDistance, Run stops early. Default is math.MaxUint64
	// (no cap) — unlike the signed original this was adapted from, there
	// is no negative value to reject, so there is no bad-config panic
	// here.
	MaxDistance uint64
}

// Option is a functional option for Run.
type Option func(*Options)

// WithReturnPath enables predecessor-map construction in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold; nodes whose shortest
// distance would exceed max are left unexplored (and, in Result.Dist,
// keep their math.MaxUint64 "unreached" placeholder).
func WithMaxDistance(max uint64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the zero-configuration defaults: no predecessor
// map, no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxUint64}
}

// Result holds the outcome of a Run call.
type Result struct {
	// Dist maps node id to shortest distance from the source.
	// Unreached nodes hold math.MaxUint64.
	Dist []uint64

	// Prev maps node id to its predecessor on the shortest path, or -1
	// if the node is the source or was never reached. Nil unless
	// WithReturnPath was supplied.
	Prev []int

	// Handle holds, for every node that was ever pushed onto the
	// priority queue during the run, the heap handle it was pushed
	// with. Handles for nodes never reached are the zero Handle, which
	// is never valid. The heap itself does not outlive Run, so these
	// are only useful for inspecting which nodes entered the queue (a
	// non-zero Handle) — resolving one against a live heap is
	// meaningless once Run has returned.
	Handle []pairingheap.Handle[int]
}
