package outline

import (
	"io"
	"strings"
)

// Connector glyphs, matching tree(1).
const (
	branchGlyph = "├── "
	cornerGlyph = "└── "
	pipeGlyph   = "│   "
	blankGlyph  = "    "
)

// Render writes the outline rooted at root to w: the root label on the first
// line, then every descendant in pre-order, one per line.
func Render(w io.Writer, root *Node) error {
	_, err := io.WriteString(w, root.String())
	return err
}

// String returns the rendered outline. A nil node renders as "".
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(n.Label)
	sb.WriteString("\n")
	writeChildren(&sb, n, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, parent *Node, prefix string) {
	last := len(parent.Children) - 1
	for i, child := range parent.Children {
		connector, indent := branchGlyph, pipeGlyph
		if i == last {
			connector, indent = cornerGlyph, blankGlyph
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(child.Label)
		sb.WriteString("\n")
		writeChildren(sb, child, prefix+indent)
	}
}
