package traverse

// orderKind is the unexported discriminant behind Order.
// Keeping it unexported seals the set: code outside this package can
// name BreadthFirst and DepthFirst but cannot mint a third member.
type orderKind uint8

const (
	orderUnknown      orderKind = iota // zero value; rejected at construction
	orderBreadthFirst                  // frontier tail, children in child order
	orderDepthFirst                    // frontier head, first child in front
)

// Order selects the frontier discipline of a traversal: where a visited
// node's children are inserted into the queue of pending nodes.
//
// The set is closed. The only valid values are BreadthFirst and
// DepthFirst; the zero Order is invalid and rejected by New, NewMut,
// Walk, and WalkMut with ErrUnknownOrder.
type Order struct {
	kind orderKind
}

// BreadthFirst visits all nodes at one depth before descending:
// children are appended to the frontier tail, in child order.
var BreadthFirst = Order{kind: orderBreadthFirst}

// DepthFirst visits a node's entire subtree before its next sibling
// (pre-order): children are inserted at the frontier head so the first
// child is the very next node yielded.
var DepthFirst = Order{kind: orderDepthFirst}

// valid reports whether o is one of the two sealed members.
func (o Order) valid() bool {
	return o.kind == orderBreadthFirst || o.kind == orderDepthFirst
}

// String returns "BreadthFirst", "DepthFirst", or "Unknown".
func (o Order) String() string {
	switch o.kind {
	case orderBreadthFirst:
		return "BreadthFirst"
	case orderDepthFirst:
		return "DepthFirst"
	default:
		return "Unknown"
	}
}
