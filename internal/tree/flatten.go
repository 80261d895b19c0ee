package tree

// Flatten returns the pre-order linearization of the forest: each node before
// its children, children in order, roots in order. The slice is recomputed on
// every call; callers must not rely on its identity across rebuilds of the
// same tree.
func Flatten(forest []*Node) []*Node {
	var out []*Node
	Walk(forest, func(node, _ *Node) {
		out = append(out, node)
	})
	return out
}

// Walk visits every node of the forest in pre-order, passing each node with
// its parent (nil for roots).
func Walk(forest []*Node, visit func(node, parent *Node)) {
	var walk func(n, parent *Node)
	walk = func(n, parent *Node) {
		visit(n, parent)
		for _, child := range n.Children {
			walk(child, n)
		}
	}
	for _, root := range forest {
		walk(root, nil)
	}
}
