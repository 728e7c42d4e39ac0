// Package outline turns Markdown headings into a box-drawn outline.
//
// # Overview
//
// An outline is built in three steps, each a pure function of its input:
//
//   - Extraction: ExtractHeadings scans a document line by line and returns
//     the ATX headings it finds, skipping fenced code blocks and any heading
//     at or above the suppression level. ExtractHeadingsGoldmark does the same
//     with a full CommonMark parser.
//
//   - Construction: Build folds the flat heading sequence into a Node tree
//     rooted at the document's display name. When a document skips levels
//     (an H4 directly under an H2) one placeholder node is inserted for each
//     missing level so depth always equals heading level.
//
//   - Rendering: Render prints the tree with the connector glyphs used by the
//     tree(1) command.
//
// # Usage
//
//	headings := outline.ExtractHeadings(body, 0)
//	root := outline.Build("README.md", headings, 0)
//	outline.Render(os.Stdout, root)
//
// # Suppression level
//
// The suppression level L removes headings whose level is <= L. Their
// descendants stay and attach to the nearest remaining ancestor, which may be
// the root. The root sits at level L, so a heading at level n renders at
// depth n-L.
package outline
