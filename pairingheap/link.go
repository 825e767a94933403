package pairingheap

import "github.com/katalvlaran/pairingheap/pool"

// unlinkFromParent removes n from its parent's child list. It is a no-op
// if n is already a root (Parent == nil). On return n.Parent,
// n.PrevSibling and n.NextSibling are all nil; n.FirstChild is untouched.
//
// pool.Node keeps Parent and PrevSibling in separate fields rather than
// overlaying them in one slot disambiguated by a tag bit, so this
// primitive never needs to ask "am I the first child?" indirectly — it
// asks p.FirstChild == n directly.
func unlinkFromParent[T any](n *pool.Node[T]) {
	p := n.Parent
	if p == nil {
		return
	}

	if p.FirstChild == n {
		p.FirstChild = n.NextSibling
		if p.FirstChild != nil {
			p.FirstChild.PrevSibling = nil
		}
	} else {
		n.PrevSibling.NextSibling = n.NextSibling
		if n.NextSibling != nil {
			n.NextSibling.PrevSibling = n.PrevSibling
		}
	}

	n.Parent = nil
	n.PrevSibling = nil
	n.NextSibling = nil
}

// linkChild makes c the new first child of p. The previous first child
// (if any) becomes c's next sibling. c's own sibling pointers are always
// overwritten by this call; callers may rely on that.
//
// Precondition: c is not currently linked anywhere (the caller has already
// unlinked it from wherever it was, or it is a fresh node).
func linkChild[T any](p, c *pool.Node[T]) {
	c.Parent = p
	c.PrevSibling = nil
	c.NextSibling = p.FirstChild
	if p.FirstChild != nil {
		p.FirstChild.PrevSibling = c
	}
	p.FirstChild = c
}
