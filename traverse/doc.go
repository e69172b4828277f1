// Package traverse provides lazy breadth-first and depth-first traversal
// over any tree-shaped type, in both read-only and in-place-mutating form.
//
// What
//
//   - A one-method capability contract: any type N with Children() []N
//     can be traversed (tree.Node is one implementer; bring your own).
//   - Iter: a read-only pull iterator over a tree or forest. Each Next
//     dequeues one node and enqueues its children per the order.
//   - MutIter: a mutating traversal yielding one exclusive Cursor per
//     step; the node's children are enqueued only when the cursor is
//     released, so children appended during the visit are traversed and
//     children removed are never seen (deferred enqueue).
//   - Walk / WalkMut: eager drivers over the same protocol, with
//     functional hooks (OnEnqueue, OnVisit), MaxDepth limiting, and
//     context cancellation.
//   - Order: a sealed two-member strategy set, BreadthFirst and
//     DepthFirst. The discipline is purely an insertion position:
//     tail for BreadthFirst, head (first child in front) for DepthFirst.
//
// Why
//
//   - Traverse caller-owned hierarchies (ASTs, DOM-like structures,
//     file-system mirrors, scene graphs) without copying them or
//     committing to an eager visitor.
//   - Mutate a tree structurally mid-traversal with well-defined
//     visibility: the engine reads a node's child list only after the
//     caller is done with that node.
//
// Determinism
//
//	The frontier is an ordered deque and Children() must return children
//	in stable (append) order, so every traversal over an unchanged tree
//	yields exactly the same sequence. BreadthFirst yields non-decreasing
//	depth, siblings in child order, forests level-by-level across all
//	roots; DepthFirst yields pre-order, completing each root's subtree
//	before the next root.
//
// Complexity (n = nodes yielded)
//
//   - Time:   O(n) node visits; BreadthFirst enqueue is amortized O(1)
//     per child, DepthFirst head insertion is O(frontier) per step.
//   - Memory: O(width) for BreadthFirst, O(depth·branching) for
//     DepthFirst — the frontier only; trees are borrowed, never copied.
//
// Usage
//
//	// Lazy, read-only:
//	it, err := traverse.New(traverse.DepthFirst, root)
//	for n, ok := it.Next(); ok; n, ok = it.Next() {
//		fmt.Println(n.Value, it.Depth())
//	}
//
//	// Lazy, mutating (cursor protocol):
//	mt, err := traverse.NewMut(traverse.BreadthFirst, root)
//	for c, ok := mt.Step(); ok; c, ok = mt.Step() {
//		c.Node().Value += 10            // mutate payload
//		c.Node().Append(tree.Leaf(99))  // structural edit, still traversed
//	}
//
//	// Eager, with options:
//	res, err := traverse.Walk(traverse.BreadthFirst, []*tree.Node[int]{r1, r2},
//		traverse.WithContext[*tree.Node[int]](ctx),
//		traverse.WithMaxDepth[*tree.Node[int]](3),
//		traverse.WithOnVisit(func(n *tree.Node[int], depth int) error { return nil }),
//	)
//
// Options (Walk/WalkMut only; Iter and MutIter take none)
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithMaxDepth(d):    do not enqueue below depth d (>0); 0 = no limit.
//   - WithOnEnqueue(fn):  hook as a node enters the frontier.
//   - WithOnVisit(fn):    hook on visit; returning an error aborts.
//
// Errors
//
//   - ErrUnknownOrder     if the Order is outside the sealed set.
//   - ErrOptionViolation  if an invalid Option (e.g. negative MaxDepth).
//   - ErrNilVisit         if WalkMut is given a nil visit func.
//   - Wrapped user-supplied hook/visit errors; ctx.Err() on cancellation.
//   - Iter and MutIter themselves have no failure modes: exhaustion is
//     signaled by ok == false, stably. Cursor misuse after release
//     panics with a named violation instead of corrupting the frontier.
//
// Caller contract: trees are finite, acyclic, and unshared (a node has
// one parent). The engine performs no cycle detection — a cyclic input
// does not terminate. Running two mutating traversals, or a mutating
// and a read-only one, over overlapping subtrees at the same time is
// undefined; read-only traversals may freely coexist.
package traverse
