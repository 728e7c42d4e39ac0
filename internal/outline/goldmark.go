package outline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractHeadingsGoldmark parses content as CommonMark and returns its
// headings in document order, dropping those whose level is <= level.
// Unlike ExtractHeadings it also recognizes setext headings, and inline
// markup in heading text is reduced to its plain text.
func ExtractHeadingsGoldmark(content []byte, level int) []Heading {
	content = bytes.TrimPrefix(content, []byte("\ufeff"))
	doc := goldmark.DefaultParser().Parse(text.NewReader(content))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := strings.TrimSpace(inlineText(heading, content))
		if heading.Level > level && title != "" {
			headings = append(headings, Heading{Level: heading.Level, Text: title})
		}
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// inlineText concatenates the text segments below n, descending into
// emphasis, links and code spans.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
