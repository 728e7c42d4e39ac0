package outline

// Build folds headings into a tree rooted at a node labeled name.
//
// The root sits at the suppression level, so a heading at level n ends up at
// depth n-level. Each heading attaches to the nearest open ancestor with a
// lower level; when that ancestor is more than one level up, a chain of
// placeholder nodes fills the gap, one per missing level. Build never fails
// and never drops a heading; one at or above level is treated as a direct
// child of the root.
func Build(name string, headings []Heading, level int) *Node {
	type stackEntry struct {
		node  *Node
		level int
	}

	root := &Node{Label: name}
	stack := []stackEntry{{node: root, level: level}}

	for _, h := range headings {
		n := max(h.Level, level+1)

		// Pop stack until we find the parent; the root always stays.
		for len(stack) > 1 && stack[len(stack)-1].level >= n {
			stack = stack[:len(stack)-1]
		}

		parent := stack[len(stack)-1]
		for l := parent.level + 1; l < n; l++ {
			placeholder := &Node{Label: PlaceholderLabel, Placeholder: true}
			parent.node.Children = append(parent.node.Children, placeholder)
			parent = stackEntry{node: placeholder, level: l}
			stack = append(stack, parent)
		}

		node := &Node{Label: h.Text}
		parent.node.Children = append(parent.node.Children, node)
		stack = append(stack, stackEntry{node: node, level: n})
	}

	return root
}
