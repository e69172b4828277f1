// Package traverse defines tunable options and error definitions for
// the eager Walk and WalkMut drivers.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal construction and execution.
var (
	// ErrUnknownOrder is returned when an Order outside the sealed
	// {BreadthFirst, DepthFirst} set (i.e. the zero Order) is supplied.
	ErrUnknownOrder = errors.New("traverse: unknown traversal order")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNilVisit is returned when WalkMut is given a nil visit func.
	ErrNilVisit = errors.New("traverse: nil visit func")
)

// Violation messages for cursor misuse. These surface as panics rather
// than errors: a released cursor must not be usable, and failing fast
// beats silently corrupting the frontier.
const (
	panicCursorReleased = "traverse: cursor used after release"
	panicDoubleRelease  = "traverse: cursor released twice"
)

// Option configures Walk and WalkMut behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when the walk starts.
type Option[N any] func(*Options[N])

// Options holds parameters and callbacks to customize an eager walk.
// The lazy Iter and MutIter engines take no options; depth limiting and
// hooks are driver concerns layered on top of the core protocol.
type Options[N any] struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a node enters the frontier, before it is
	// visited. Receives the node and its depth from the roots.
	OnEnqueue func(node N, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(node N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		Ctx:       context.Background(),
		OnEnqueue: func(N, int) {},
		OnVisit:   func(N, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N any](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a node is enqueued.
func WithOnEnqueue[N any](fn func(node N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[N any](fn func(node N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk below the given depth.
//
//	d > 0: visit nodes at depth ≤ d only
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[N any](d int) Option[N] {
	return func(o *Options[N]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of an eager read-only walk:
//   - Nodes: nodes visited, in visit sequence.
//   - Depths: Depths[i] is the depth of Nodes[i] (roots are depth 0).
type Result[N any] struct {
	Nodes  []N
	Depths []int
}
