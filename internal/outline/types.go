package outline

// PlaceholderLabel is the label rendered for nodes synthesized to fill a
// skipped heading level.
const PlaceholderLabel = "[]"

// Heading is a single heading line extracted from a document.
type Heading struct {
	Level int    // Number of leading # characters, 1-6
	Text  string // Heading text without markers or surrounding whitespace
}

// Node is an entry in a document outline. The root node carries the
// document's display name; every other node is a heading or a placeholder.
type Node struct {
	Label       string
	Placeholder bool
	Children    []*Node
}

// Walk traverses the tree in depth-first pre-order, calling fn for each node.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Size returns the number of nodes in the tree, including the root.
func (n *Node) Size() int {
	size := 0
	n.Walk(func(*Node) {
		size++
	})
	return size
}

// Height returns the number of levels in the tree. A lone root has height 1.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	h := 0
	for _, child := range n.Children {
		h = max(h, child.Height())
	}
	return h + 1
}

// Headings returns the number of non-placeholder nodes below the root.
func (n *Node) Headings() int {
	count := 0
	n.Walk(func(node *Node) {
		if node != n && !node.Placeholder {
			count++
		}
	})
	return count
}
