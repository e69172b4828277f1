// Package tree provides a ready-made generic node type for the
// traverse engines: a payload plus an ordered, owned child list.
package tree

// Node is a plain value-plus-children tree vertex. It satisfies the
// traverse.Node capability for both read-only and mutating traversal.
//
// A node owns its children exclusively: the same *Node must not appear
// under two parents or as its own descendant. The child list keeps
// stable append order.
type Node[T any] struct {
	// Value is the payload carried by this node.
	Value T

	children []*Node[T]
}

// Leaf returns a new node holding v with no children.
func Leaf[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// New returns a new node holding v with the given children, in order.
func New[T any](v T, children ...*Node[T]) *Node[T] {
	return &Node[T]{Value: v, children: children}
}

// Children returns the node's live child slice, in append order.
// This is the traverse capability method; treat the result as read-only
// and use the mutators below for structural edits.
func (n *Node[T]) Children() []*Node[T] { return n.children }

// Len returns the number of immediate children.
func (n *Node[T]) Len() int { return len(n.children) }

// Child returns the i-th child. Panics if i is out of range, as a
// slice index would.
func (n *Node[T]) Child(i int) *Node[T] { return n.children[i] }

// Append adds children to the end of the child list, preserving order.
func (n *Node[T]) Append(children ...*Node[T]) {
	n.children = append(n.children, children...)
}

// Insert places child at index i, shifting later children right.
// i == Len() appends. Panics if i is out of range.
func (n *Node[T]) Insert(i int, child *Node[T]) {
	if i < 0 || i > len(n.children) {
		panic("tree: Insert index out of range")
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// Remove detaches and returns the i-th child, shifting later children
// left. Panics if i is out of range.
func (n *Node[T]) Remove(i int) *Node[T] {
	if i < 0 || i >= len(n.children) {
		panic("tree: Remove index out of range")
	}
	child := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	return child
}

// SetChildren replaces the entire child list.
func (n *Node[T]) SetChildren(children ...*Node[T]) {
	n.children = children
}

// Clone returns a deep copy of the subtree rooted at n: every node is
// duplicated, payloads are copied by assignment (shallow for reference
// payloads). Clone(nil) is nil.
func (n *Node[T]) Clone() *Node[T] {
	if n == nil {
		return nil
	}
	c := &Node[T]{Value: n.Value}
	if len(n.children) > 0 {
		c.children = make([]*Node[T], len(n.children))
		for i, child := range n.children {
			c.children[i] = child.Clone()
		}
	}
	return c
}

// Equal reports recursive structural equality: two nodes are equal iff
// their payloads are equal and their child lists are pairwise Equal in
// order. Two nil nodes are equal.
func Equal[T comparable](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Value != b.Value || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
