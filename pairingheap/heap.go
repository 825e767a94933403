package pairingheap

import "github.com/katalvlaran/pairingheap/pool"

// Heap is a mergeable min-priority queue with stable, addressable handles.
// The zero value is not usable; construct one with New.
//
// Heap invariants, maintained by every exported method:
//
//	H1 every node is a root or reachable from exactly one root.
//	H2 for every non-root c with parent p, ¬less(c.Key, p.Key).
//	H3 when topValid, top references a root with an extremal key.
//	H4 size equals the number of reachable nodes.
type Heap[T any] struct {
	pool pool.Pool[T]
	cmp  Comparator[T]

	// rootHead/rootTail delimit a null-terminated doubly linked root
	// list, threaded through the same Parent/PrevSibling/NextSibling
	// fields pool.Node uses for tree siblings — a node uses one or the
	// other, never both, because root-ness (Parent == nil) and
	// child-ness are mutually exclusive.
	rootHead *pool.Node[T]
	rootTail *pool.Node[T]

	size int

	top      *pool.Node[T]
	topValid bool
}

// New constructs an empty Heap backed by the given node pool and ordered
// by cmp. The heap owns p for its lifetime; callers should not Acquire or
// Release against p directly once it has been handed to a Heap.
func New[T any](p pool.Pool[T], cmp Comparator[T]) *Heap[T] {
	return &Heap[T]{pool: p, cmp: cmp}
}

// Size returns the number of live elements.
func (h *Heap[T]) Size() int { return h.size }

// Comparator returns the comparator this heap was constructed with. Its
// concrete type, if it wraps a pointer to shared state (ExternalMetric,
// for instance), lets the caller mutate that state directly between heap
// calls — the heap itself never writes through this accessor.
func (h *Heap[T]) Comparator() Comparator[T] { return h.cmp }

// Push inserts value as a new root and returns a stable handle to it.
// O(1).
func (h *Heap[T]) Push(value T) Handle[T] {
	n := h.pool.Acquire()
	n.Key = value
	h.appendRoot(n)
	h.size++
	h.topValid = false

	return Handle[T]{node: n, gen: n.Gen}
}

// Top returns the current minimum key. Precondition: Size() > 0; violating
// it panics with ErrEmptyHeap.
func (h *Heap[T]) Top() T {
	if h.size == 0 {
		panic(ErrEmptyHeap)
	}
	if !h.topValid {
		h.consolidate()
	}

	return h.top.Key
}

// Pop removes the current minimum. Precondition: Size() > 0; violating it
// panics with ErrEmptyHeap. Amortised O(1); worst case O(children of the
// removed node), since each child is re-appended to the root list.
func (h *Heap[T]) Pop() {
	if h.size == 0 {
		panic(ErrEmptyHeap)
	}
	if !h.topValid {
		h.consolidate()
	}

	min := h.top
	h.unlinkRoot(min)

	child := min.FirstChild
	min.FirstChild = nil
	for child != nil {
		next := child.NextSibling
		child.Parent = nil
		child.PrevSibling = nil
		child.NextSibling = nil
		h.appendRoot(child)
		child = next
	}

	h.pool.Release(min)
	h.size--
	h.top = nil
	h.topValid = false
}

// ModifyUp decreases a key in the "toward the top" direction. Precondition:
// ¬less(oldKey, newKey) — newKey must not be strictly worse than the
// element's current key. Violating the precondition does not corrupt the
// heap (the write and relink always happen; H2 can only be restored, never
// broken, by a genuine decrease) but will surface as a wrong Top() to the
// caller; this class of misuse is undetectable by the core and is the
// caller's responsibility to avoid.
//
// O(1): unlink from parent (no-op if already a root) and invalidate the
// top cache. A node that is already a root is left at its current root-list
// position — it needs no relinking, since it cannot violate H2 against
// anything.
func (h *Heap[T]) ModifyUp(handle Handle[T], newKey T) {
	n := h.resolve(handle)
	n.Key = newKey
	if n.Parent != nil {
		unlinkFromParent(n)
		h.appendRoot(n)
	}
	h.topValid = false
}

// Modify changes a key in either direction. If the change is toward the
// top (¬less(oldKey, newKey)), this delegates to ModifyUp. Otherwise the
// key may now violate H2 against some of the node's children, so each
// child is compared against the new key exactly once; violators are
// detached and reattached either as new children of the node's former
// parent, or as new roots if the node itself was a root. The
// node itself always ends up in the root list — a root position is always
// safe regardless of how its key changed.
//
// O(number of children of the modified node).
func (h *Heap[T]) Modify(handle Handle[T], newKey T) {
	n := h.resolve(handle)
	oldKey := n.Key
	if !h.cmp.Less(oldKey, newKey) {
		h.ModifyUp(handle, newKey)

		return
	}

	n.Key = newKey
	formerParent := n.Parent

	child := n.FirstChild
	for child != nil {
		next := child.NextSibling
		if h.cmp.Less(child.Key, n.Key) {
			unlinkFromParent(child)
			if formerParent != nil {
				linkChild(formerParent, child)
			} else {
				h.appendRoot(child)
			}
		}
		child = next
	}

	if n.Parent != nil {
		unlinkFromParent(n)
	} else {
		h.unlinkRoot(n)
	}
	h.appendRoot(n)
	h.topValid = false
}

// resolve validates a handle and returns its node, panicking with
// ErrInvalidHandle if the handle is stale or was never valid.
func (h *Heap[T]) resolve(handle Handle[T]) *pool.Node[T] {
	if !handle.valid() {
		panic(ErrInvalidHandle)
	}

	return handle.node
}

// appendRoot inserts n at the tail of the root list. O(1).
func (h *Heap[T]) appendRoot(n *pool.Node[T]) {
	n.Parent = nil
	n.PrevSibling = h.rootTail
	n.NextSibling = nil
	if h.rootTail != nil {
		h.rootTail.NextSibling = n
	} else {
		h.rootHead = n
	}
	h.rootTail = n
}

// unlinkRoot removes n from the root list, wherever it sits. Precondition:
// n is currently a root. O(1).
func (h *Heap[T]) unlinkRoot(n *pool.Node[T]) {
	if n.PrevSibling != nil {
		n.PrevSibling.NextSibling = n.NextSibling
	} else {
		h.rootHead = n.NextSibling
	}
	if n.NextSibling != nil {
		n.NextSibling.PrevSibling = n.PrevSibling
	} else {
		h.rootTail = n.PrevSibling
	}
	n.PrevSibling = nil
	n.NextSibling = nil
}

// consolidate runs a single-pass pairing merge: it walks the root list
// left-to-right linking adjacent pairs, and the running minimum of kept
// roots is tracked inline rather than in a separate pass. An odd final
// root is kept as-is.
//
// Tie-break: on equal keys (¬less(a,b) and ¬less(b,a)), the earlier root
// (a) wins and becomes parent. The strict, non-tied case follows the
// original C++ reference (pq/addressable_pairing_heap.hpp
// rake_and_update_roots): the smaller key always becomes parent, which is
// the only choice that preserves H2.
//
// Each adjacent pair is compared at most once.
func (h *Heap[T]) consolidate() {
	var newHead, newTail *pool.Node[T]
	appendNew := func(n *pool.Node[T]) {
		n.PrevSibling = newTail
		n.NextSibling = nil
		if newTail != nil {
			newTail.NextSibling = n
		} else {
			newHead = n
		}
		newTail = n
	}

	var min *pool.Node[T]
	trackMin := func(n *pool.Node[T]) {
		if min == nil || h.cmp.Less(n.Key, min.Key) {
			min = n
		}
	}

	cur := h.rootHead
	for cur != nil && cur.NextSibling != nil {
		a := cur
		b := cur.NextSibling
		next := b.NextSibling

		a.PrevSibling, a.NextSibling = nil, nil
		b.PrevSibling, b.NextSibling = nil, nil

		var winner *pool.Node[T]
		if h.cmp.Less(b.Key, a.Key) {
			linkChild(b, a)
			winner = b
		} else {
			linkChild(a, b)
			winner = a
		}

		appendNew(winner)
		trackMin(winner)
		cur = next
	}
	if cur != nil {
		cur.PrevSibling, cur.NextSibling = nil, nil
		appendNew(cur)
		trackMin(cur)
	}

	h.rootHead = newHead
	h.rootTail = newTail
	h.top = min
	h.topValid = true
}
