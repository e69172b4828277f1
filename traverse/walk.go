package traverse

import "fmt"

// walker encapsulates mutable state of an eager walk.
type walker[N Node[N]] struct {
	f    frontier[N]
	opts Options[N]
}

// newWalker validates o and opts and seeds the frontier with roots,
// firing OnEnqueue for each. Shared by Walk and WalkMut.
func newWalker[N Node[N]](o Order, roots []N, opts []Option[N]) (*walker[N], error) {
	if !o.valid() {
		return nil, ErrUnknownOrder
	}
	// Build options and catch any invalid ones immediately
	wo := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&wo)
	}
	if wo.err != nil {
		return nil, wo.err
	}

	w := &walker[N]{f: frontier[N]{order: o}, opts: wo}
	w.f.seed(roots)
	for _, r := range roots {
		w.opts.OnEnqueue(r, 0)
	}
	return w, nil
}

// cancelled checks the walk context once per dequeue.
func (w *walker[N]) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// enqueueChildren pushes children at depth d, honoring MaxDepth and
// firing OnEnqueue per admitted child.
func (w *walker[N]) enqueueChildren(children []N, d int) {
	if w.opts.MaxDepth > 0 && d > w.opts.MaxDepth {
		return
	}
	for _, c := range children {
		w.opts.OnEnqueue(c, d)
	}
	w.f.push(children, d)
}

// Walk drives a read-only traversal of the forest roots to exhaustion
// in order o, applying any number of functional Options.
// Returns ErrUnknownOrder for an invalid order, ErrOptionViolation for
// bad options, the context error on cancellation (with the partial
// Result), or any user-supplied OnVisit error.
func Walk[N Node[N]](o Order, roots []N, opts ...Option[N]) (*Result[N], error) {
	w, err := newWalker(o, roots, opts)
	if err != nil {
		return nil, err
	}

	res := &Result[N]{
		Nodes:  make([]N, 0, len(roots)),
		Depths: make([]int, 0, len(roots)),
	}
	for !w.f.empty() {
		if err = w.cancelled(); err != nil {
			return res, err
		}
		e := w.f.pop()
		res.Nodes = append(res.Nodes, e.node)
		res.Depths = append(res.Depths, e.depth)
		if err = w.opts.OnVisit(e.node, e.depth); err != nil {
			return res, fmt.Errorf("traverse: OnVisit error at depth %d: %w", e.depth, err)
		}
		w.enqueueChildren(e.node.Children(), e.depth+1)
	}
	return res, nil
}

// WalkMut drives a mutating traversal of the forest roots to exhaustion
// in order o, calling visit with exclusive access to each node. This is
// the callback form of the MutIter cursor protocol: a node's children
// are read and enqueued only after visit returns, so structural edits
// made inside visit (appending, removing, reordering children) are
// honored by the traversal.
// Returns ErrUnknownOrder, ErrOptionViolation, ErrNilVisit, the context
// error on cancellation, or any error returned by visit.
func WalkMut[N Node[N]](o Order, roots []N, visit func(node N, depth int) error, opts ...Option[N]) error {
	if visit == nil {
		return ErrNilVisit
	}
	w, err := newWalker(o, roots, opts)
	if err != nil {
		return err
	}

	for !w.f.empty() {
		if err = w.cancelled(); err != nil {
			return err
		}
		e := w.f.pop()
		if err = w.opts.OnVisit(e.node, e.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at depth %d: %w", e.depth, err)
		}
		if err = visit(e.node, e.depth); err != nil {
			return fmt.Errorf("traverse: visit error at depth %d: %w", e.depth, err)
		}
		// deferred enqueue: children read only after visit returns
		w.enqueueChildren(e.node.Children(), e.depth+1)
	}
	return nil
}
