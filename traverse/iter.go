// Package traverse provides lazy breadth-first and depth-first
// traversal over any tree-shaped type, read-only via Iter and mutating
// via MutIter, plus eager Walk/WalkMut drivers with hooks, depth
// limiting, and cancellation.
package traverse

import "iter"

// Node is the capability contract a tree-shaped type must satisfy to be
// traversed: produce the ordered slice of its immediate children.
//
// N is the node reference type itself (typically a pointer), so a
// concrete tree declares e.g.
//
//	func (n *MyNode) Children() []*MyNode { return n.kids }
//
// and *MyNode satisfies Node[*MyNode]. The returned slice must reflect
// the node's current children in stable (append) order; the engine
// reads it but never retains or mutates it.
//
// Trees must be finite and acyclic, and no node may be shared between
// two parents. The engine does not detect cycles; a cyclic structure
// makes traversal non-terminating.
type Node[N any] interface {
	Children() []N
}

// entry pairs a pending node with its depth from the roots.
type entry[N any] struct {
	node  N
	depth int
}

// frontier is the ordered, double-ended queue of discovered-but-unvisited
// nodes. The insertion position of children is the whole difference
// between the two traversal orders.
type frontier[N any] struct {
	order Order
	items []entry[N]
}

// seed fills the frontier with the root nodes, all at depth 0.
func (f *frontier[N]) seed(roots []N) {
	f.items = make([]entry[N], len(roots))
	for i, r := range roots {
		f.items[i] = entry[N]{node: r, depth: 0}
	}
}

// empty reports whether the traversal is exhausted.
func (f *frontier[N]) empty() bool { return len(f.items) == 0 }

// pop removes and returns the head entry. Callers check empty first.
func (f *frontier[N]) pop() entry[N] {
	e := f.items[0]
	f.items = f.items[1:]
	return e
}

// push enqueues children at depth d per the order discipline:
// BreadthFirst appends them to the tail in child order; DepthFirst
// inserts them as a block at the head, so the first child becomes the
// next node popped and left-to-right pre-order is preserved.
func (f *frontier[N]) push(children []N, depth int) {
	if len(children) == 0 {
		return
	}
	if f.order == BreadthFirst {
		for _, c := range children {
			f.items = append(f.items, entry[N]{node: c, depth: depth})
		}
		return
	}
	block := make([]entry[N], 0, len(children)+len(f.items))
	for _, c := range children {
		block = append(block, entry[N]{node: c, depth: depth})
	}
	f.items = append(block, f.items...)
}

// Iter is a lazy read-only traversal over a tree or forest.
//
// It never mutates the tree and holds no state beyond the frontier;
// construct a new Iter to restart. Two Iters over the same unchanged
// tree yield identical sequences.
type Iter[N Node[N]] struct {
	f     frontier[N]
	depth int
}

// New constructs a read-only traversal in order o, seeded with roots in
// the given order (a forest; one root is the common case). Zero roots
// is not an error: the engine is simply exhausted from the start.
// Returns ErrUnknownOrder if o is not BreadthFirst or DepthFirst.
func New[N Node[N]](o Order, roots ...N) (*Iter[N], error) {
	if !o.valid() {
		return nil, ErrUnknownOrder
	}
	it := &Iter[N]{f: frontier[N]{order: o}}
	it.f.seed(roots)
	return it, nil
}

// Next returns the next node in traversal order, or ok == false once
// the frontier is exhausted. Exhaustion is stable: every later call
// keeps reporting false. The yielded node's children are discovered and
// enqueued as part of this call.
func (it *Iter[N]) Next() (n N, ok bool) {
	if it.f.empty() {
		var zero N
		return zero, false
	}
	e := it.f.pop()
	it.depth = e.depth
	it.f.push(e.node.Children(), e.depth+1)
	return e.node, true
}

// Depth reports the depth of the node most recently returned by Next
// (roots are depth 0). Zero before the first call.
func (it *Iter[N]) Depth() int { return it.depth }

// Seq adapts the remaining traversal to a range-over-func sequence:
//
//	for n := range it.Seq() { ... }
//
// Breaking out of the range simply stops pulling; the iterator stays
// usable from where the range left off.
func (it *Iter[N]) Seq() iter.Seq[N] {
	return func(yield func(N) bool) {
		for n, ok := it.Next(); ok; n, ok = it.Next() {
			if !yield(n) {
				return
			}
		}
	}
}
