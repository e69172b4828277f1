package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/treewalk/traverse"
	"github.com/katalvlaran/treewalk/tree"
)

// ExampleNew walks a small tree in both orders.
// Tree:
//
//	    1
//	   / \
//	  2   3
//	 / \
//	4   5
func ExampleNew() {
	root := tree.New(1,
		tree.New(2, tree.Leaf(4), tree.Leaf(5)),
		tree.Leaf(3),
	)

	df, _ := traverse.New(traverse.DepthFirst, root)
	var preorder []int
	for n, ok := df.Next(); ok; n, ok = df.Next() {
		preorder = append(preorder, n.Value)
	}
	fmt.Println(preorder)

	bf, _ := traverse.New(traverse.BreadthFirst, root)
	var levelorder []int
	for n, ok := bf.Next(); ok; n, ok = bf.Next() {
		levelorder = append(levelorder, n.Value)
	}
	fmt.Println(levelorder)
	// Output:
	// [1 2 4 5 3]
	// [1 2 3 4 5]
}

// ExampleIter_Seq ranges over a forest lazily; breaking out of the
// range leaves the rest of the tree unvisited, which is legal.
func ExampleIter_Seq() {
	forest := []*tree.Node[string]{
		tree.New("a", tree.Leaf("a1")),
		tree.New("b", tree.Leaf("b1")),
	}

	it, _ := traverse.New(traverse.BreadthFirst, forest...)
	for n := range it.Seq() {
		if n.Value == "a1" {
			break
		}
		fmt.Println(n.Value)
	}
	// Output:
	// a
	// b
}

// ExampleMutIter_Step grows the tree while traversing it: children
// appended under the cursor are discovered at release and visited in
// order.
func ExampleMutIter_Step() {
	root := tree.Leaf(1)

	mt, _ := traverse.NewMut(traverse.DepthFirst, root)
	for c, ok := mt.Step(); ok; c, ok = mt.Step() {
		if c.Node().Value == 1 {
			c.Node().Append(tree.Leaf(2), tree.Leaf(3))
		}
		fmt.Print(c.Node().Value, " ")
	}
	// Output:
	// 1 2 3
}

// ExampleWalk drives a bounded, observable traversal: depth ≤ 1, with
// an OnVisit hook reporting each node's depth.
func ExampleWalk() {
	root := tree.New(1,
		tree.New(2, tree.Leaf(4), tree.Leaf(5)),
		tree.Leaf(3),
	)

	_, err := traverse.Walk(traverse.BreadthFirst, []*tree.Node[int]{root},
		traverse.WithMaxDepth[*tree.Node[int]](1),
		traverse.WithOnVisit(func(n *tree.Node[int], depth int) error {
			fmt.Printf("%d@%d ", n.Value, depth)
			return nil
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 1@0 2@1 3@1
}

// ExampleWalkMut doubles every payload through the callback form of the
// mutating protocol.
func ExampleWalkMut() {
	root := tree.New(1, tree.Leaf(2), tree.Leaf(3))

	_ = traverse.WalkMut(traverse.DepthFirst, []*tree.Node[int]{root},
		func(n *tree.Node[int], _ int) error {
			n.Value *= 2
			return nil
		})

	it, _ := traverse.New(traverse.DepthFirst, root)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		fmt.Print(n.Value, " ")
	}
	// Output:
	// 2 4 6
}
