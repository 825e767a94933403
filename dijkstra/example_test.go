package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pairingheap/dijkstra"
	"github.com/katalvlaran/pairingheap/graph"
)

// ExampleRun_triangle computes shortest distances on a small undirected
// triangle, represented as a directed graph with an edge in each direction.
func ExampleRun_triangle() {
	const A, B, C = 0, 1, 2

	b := graph.NewBuilder[uint64](3)
	addUndirected := func(u, v int, w uint64) {
		_ = b.AddEdge(u, v, w)
		_ = b.AddEdge(v, u, w)
	}
	addUndirected(A, B, 1)
	addUndirected(B, C, 2)
	addUndirected(A, C, 5)
	g := b.Build()

	result, err := dijkstra.Run(g, A)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", result.Dist[A], result.Dist[B], result.Dist[C])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleRun_houseGraph computes shortest distances on a small directed,
// weighted graph shaped like a house:
//
//	    (E)
//	  3/   \4
//	  /     \
//	(C)──10─(D)
//	 |       |
//	2|       |5
//	 |       |
//	(A)──4──(B)
func ExampleRun_houseGraph() {
	const A, B, C, D, E = 0, 1, 2, 3, 4

	b := graph.NewBuilder[uint64](5)
	edges := []struct {
		u, v int
		w    uint64
	}{
		{A, B, 4},
		{A, C, 2},
		{B, D, 5},
		{C, D, 10},
		{C, E, 3},
		{E, D, 4},
	}
	for _, e := range edges {
		_ = b.AddEdge(e.u, e.v, e.w)
	}
	g := b.Build()

	result, err := dijkstra.Run(g, A, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[D]=%d dist[E]=%d\n", result.Dist[D], result.Dist[E])
	// Output: dist[D]=9 dist[E]=5
}
