// Package dijkstra provides a single-source shortest-path driver over the
// static graph package, backed by the pairingheap package's addressable
// priority queue.
//
// Overview:
//
//   - Computes the minimum-cost path from a single source node to every
//     reachable node in O((V + E) log V) time.
//   - Orders exploration with a pairing heap keyed by node id, compared by
//     an external distance array (pairingheap.ExternalMetric), so relaxing
//     an edge that improves a queued node's distance is a single ModifyUp
//     call rather than a duplicate Push plus a later stale-entry skip.
//
// Key features:
//
//   - Functional options: WithReturnPath enables predecessor tracking,
//     WithMaxDistance bounds exploration.
//   - Weights are uint64: there is no negative-weight case to detect, and
//     no pre-scan of the edge set is required before the main loop runs.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: g was nil.
//   - ErrSourceOutOfRange: source was not in [0, g.NumNodes()).
//
// See also:
//
//   - graph.Graph / graph.Builder: the static adjacency-list structure Run
//     traverses.
//   - pairingheap.Heap: the priority queue Run drives.
package dijkstra
