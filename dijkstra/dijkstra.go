package dijkstra

import (
	"math"

	"github.com/katalvlaran/pairingheap/graph"
	"github.com/katalvlaran/pairingheap/pairingheap"
	"github.com/katalvlaran/pairingheap/pool"
)

// Run computes shortest distances from source to every node reachable from
// it in g, using a pairingheap.Heap[int] keyed by node id and ordered by an
// ExternalMetric reading directly from Result.Dist — decreasing a node's
// distance during relaxation is a single ModifyUp call, not a duplicate
// Push followed by a later stale-entry skip.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in [0, g.NumNodes()) (ErrSourceOutOfRange).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Run(g *graph.Graph[uint64], source int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}

	n := g.NumNodes()
	if source < 0 || source >= n {
		return Result{}, ErrSourceOutOfRange
	}

	dist := make([]uint64, n)
	for v := range dist {
		dist[v] = math.MaxUint64
	}
	dist[source] = 0

	var prev []int
	if cfg.ReturnPath {
		prev = make([]int, n)
		for v := range prev {
			prev[v] = -1
		}
	}

	metric := &pairingheap.ExternalMetric[int]{Dist: dist}
	pq := pairingheap.New[int](pool.NewDirect[int](), metric)

	handles := make([]pairingheap.Handle[int], n)
	queued := make([]bool, n)

	handles[source] = pq.Push(source)
	queued[source] = true

	for pq.Size() > 0 {
		u := pq.Top()
		pq.Pop()
		queued[u] = false

		if dist[u] > cfg.MaxDistance {
			break
		}

		begin, end := g.EdgesOf(u)
		for e := begin; e < end; e++ {
			v := g.Target(e)
			w := g.EdgeData(e)
			newDist := dist[u] + w
			if newDist < dist[u] {
				// Saturate on overflow rather than wrapping to a small value.
				newDist = math.MaxUint64
			}

			if newDist > cfg.MaxDistance || newDist >= dist[v] {
				continue
			}

			dist[v] = newDist
			if prev != nil {
				prev[v] = u
			}

			if queued[v] {
				// The key stored for v is still v itself; what changed is
				// dist[v], which the comparator reads externally. ModifyUp
				// re-homes v in the tree and invalidates the cached top so
				// the heap observes the new, smaller distance.
				pq.ModifyUp(handles[v], v)
			} else {
				handles[v] = pq.Push(v)
				queued[v] = true
			}
		}
	}

	return Result{Dist: dist, Prev: prev, Handle: handles}, nil
}
