// Package tree provides the default node type for treewalk: a generic
// payload plus an ordered, exclusively-owned child list.
//
// What
//
//   - Node[T]: an exported Value field and an encapsulated child slice
//     behind Children()/Append/Insert/Remove/SetChildren, keeping the
//     capability method and the mutators on one type.
//   - Constructors: Leaf(v) for childless nodes, New(v, children...)
//     for arbitrary shapes in one expression.
//   - Structural operations: Clone (deep copy) and Equal (recursive
//     payload-and-shape equality, T comparable).
//
// Why
//
//   - Tests and simple callers need a concrete tree without writing
//     their own; anything richer should implement traverse.Node
//     directly on its own type instead of wrapping this one.
//
// Usage
//
//	root := tree.New(1,
//		tree.New(2, tree.Leaf(4), tree.Leaf(5)),
//		tree.Leaf(3),
//	)
//	it, _ := traverse.New(traverse.BreadthFirst, root)
//	for n, ok := it.Next(); ok; n, ok = it.Next() {
//		fmt.Println(n.Value) // 1 2 3 4 5
//	}
//
// Node carries no locks and no parent links; ownership is by
// convention — a node appears under at most one parent, and Children()
// results are read-only to callers.
package tree
