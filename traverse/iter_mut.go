package traverse

// MutIter is a lazy mutating traversal over a tree or forest.
//
// Where Iter hands out nodes directly, MutIter hands out a Cursor per
// step, and defers discovering the node's children until that cursor is
// released. The caller may therefore restructure the children of the
// node under the cursor — append, insert, remove, reorder — and the
// enqueue step sees the child list as it stands at release time.
//
// At most one cursor is live at a time: Step releases any cursor the
// caller left open before yielding the next one. The frontier holds the
// only references the engine keeps, so as long as the caller does not
// alias nodes elsewhere, the node under the cursor is exclusively held.
type MutIter[N Node[N]] struct {
	f    frontier[N]
	live *Cursor[N]
}

// NewMut constructs a mutating traversal in order o over roots, with
// the same forest and empty-input semantics as New.
// Returns ErrUnknownOrder if o is not BreadthFirst or DepthFirst.
func NewMut[N Node[N]](o Order, roots ...N) (*MutIter[N], error) {
	if !o.valid() {
		return nil, ErrUnknownOrder
	}
	it := &MutIter[N]{f: frontier[N]{order: o}}
	it.f.seed(roots)
	return it, nil
}

// Step yields a cursor bound to the next node in traversal order, or
// ok == false once the frontier is exhausted. A cursor still live from
// the previous step is released first, so a plain
//
//	for c, ok := it.Step(); ok; c, ok = it.Step() {
//		c.Node().Value++
//	}
//
// loop needs no explicit Release calls.
func (it *MutIter[N]) Step() (c *Cursor[N], ok bool) {
	if it.live != nil {
		it.live.Release()
	}
	if it.f.empty() {
		return nil, false
	}
	e := it.f.pop()
	it.live = &Cursor[N]{it: it, node: e.node, depth: e.depth}
	return it.live, true
}

// Cursor is a transient exclusive handle to one node during mutating
// traversal. It carries an obligation: on release, the bound node's
// current child list is read and enqueued per the traversal order.
//
// A cursor is single-use. Accessing it after release (or releasing it
// twice) is a protocol violation and panics rather than corrupting the
// frontier.
type Cursor[N Node[N]] struct {
	it       *MutIter[N]
	node     N
	depth    int
	released bool
}

// Node returns the bound node for reading and in-place mutation.
// Panics if the cursor has been released.
func (c *Cursor[N]) Node() N {
	if c.released {
		panic(panicCursorReleased)
	}
	return c.node
}

// Depth reports the bound node's depth from the roots (roots are 0).
// Panics if the cursor has been released.
func (c *Cursor[N]) Depth() int {
	if c.released {
		panic(panicCursorReleased)
	}
	return c.depth
}

// Release ends the visit: it reads the bound node's children as they
// currently stand — after any mutations made through the cursor — and
// enqueues them per the traversal order. Children appended during the
// visit are therefore traversed; children removed are never seen.
//
// Release is called implicitly by the next Step, so explicit calls are
// only needed to force the enqueue earlier. Panics on a second call.
func (c *Cursor[N]) Release() {
	if c.released {
		panic(panicDoubleRelease)
	}
	c.released = true
	c.it.live = nil
	c.it.f.push(c.node.Children(), c.depth+1)
}
