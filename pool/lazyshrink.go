package pool

// LazyShrinkPool is the simpler of this module's two size-adaptive
// policies: it grows by
// exactly one node whenever Acquire finds the free list empty, and on
// Release frees the node immediately (shrinking capacity by one) whenever
// occupancy has fallen comfortably below shrinkPct; otherwise the node is
// pushed onto the free list for reuse, exactly like HysteresisPool.
//
// Where HysteresisPool resizes in batches tied to growPct/shrinkPct bands,
// LazyShrinkPool never over-allocates by more than the high-water mark of
// concurrently live nodes plus whatever the shrink threshold leaves
// idle — a cheaper policy to reason about at the cost of more individual
// allocator calls under bursty load.
type LazyShrinkPool[T any] struct {
	shrinkPct int

	capacity int
	size     int
	free     *Node[T]
}

// NewLazyShrink constructs a LazyShrinkPool. shrinkPct must be positive;
// it is compared against capacity*100 the same way HysteresisPool's
// shrinkPct is, so a shrinkPct of 300 means "free eagerly once size*3 <
// capacity".
func NewLazyShrink[T any](shrinkPct int) *LazyShrinkPool[T] {
	if shrinkPct <= 0 {
		panic("pool: shrinkPct must be positive")
	}

	return &LazyShrinkPool[T]{shrinkPct: shrinkPct}
}

// Acquire returns a free node if one is idle, else grows capacity by
// exactly one and allocates it fresh.
func (p *LazyShrinkPool[T]) Acquire() *Node[T] {
	p.size++
	if p.free == nil {
		p.capacity++

		return &Node[T]{Gen: 1}
	}

	n := p.free
	p.free = n.NextSibling
	n.NextSibling = nil
	n.Gen++

	return n
}

// Release returns a node to the pool, freeing it immediately (shrinking
// capacity) if occupancy has dropped below the shrink threshold, or
// pushing it onto the free list for reuse otherwise.
func (p *LazyShrinkPool[T]) Release(n *Node[T]) {
	n.reset()
	p.size--

	if p.size*p.shrinkPct < p.capacity*100 {
		p.capacity--
		// n is discarded; the garbage collector reclaims it.
		return
	}

	n.NextSibling = p.free
	p.free = n
}

// FreeCount reports the number of idle nodes.
func (p *LazyShrinkPool[T]) FreeCount() int { return p.capacity - p.size }

// Capacity reports total allocated nodes (in use + idle).
func (p *LazyShrinkPool[T]) Capacity() int { return p.capacity }

// Size reports nodes currently in use.
func (p *LazyShrinkPool[T]) Size() int { return p.size }
