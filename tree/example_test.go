package tree_test

import (
	"fmt"

	"github.com/katalvlaran/treewalk/traverse"
	"github.com/katalvlaran/treewalk/tree"
)

// ExampleNew builds a tree in one expression and walks it both ways.
func ExampleNew() {
	root := tree.New("root",
		tree.New("bin", tree.Leaf("ls"), tree.Leaf("cp")),
		tree.Leaf("etc"),
	)

	it, _ := traverse.New(traverse.DepthFirst, root)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		fmt.Println(n.Value)
	}
	// Output:
	// root
	// bin
	// ls
	// cp
	// etc
}

// ExampleNode_Clone shows that a clone is structurally equal but fully
// independent of the original.
func ExampleNode_Clone() {
	orig := tree.New(1, tree.Leaf(2))
	cp := orig.Clone()
	cp.Append(tree.Leaf(3))

	fmt.Println(tree.Equal(orig, cp))
	fmt.Println(orig.Len(), cp.Len())
	// Output:
	// false
	// 1 2
}
