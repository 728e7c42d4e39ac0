// Package document loads Markdown files and derives their display names.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ErrRead is returned when a document cannot be read.
var ErrRead = errors.New("read error")

// Document is a Markdown file ready for heading extraction.
type Document struct {
	// Path is the file's path within the filesystem it was loaded from.
	Path string
	// Name is the display name: the frontmatter title, or the base name of Path.
	Name string
	// Title is the frontmatter title, empty when there is none.
	Title string
	// Body is the content following the frontmatter block.
	Body []byte
}

type frontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// Load reads path from fsys in full and parses it.
func Load(fsys billy.Basic, path string) (*Document, error) {
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Parse(path, data), nil
}

// Parse splits data into frontmatter and body. Only a block carrying a title
// counts as frontmatter: otherwise the display name is the file name and the
// whole of data is the body, since a leading "---" may just as well be a
// thematic break with headings after it.
func Parse(path string, data []byte) *Document {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	doc := &Document{
		Path: path,
		Name: filepath.Base(path),
		Body: data,
	}

	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return doc
	}

	if title := strings.TrimSpace(meta.Title); title != "" {
		doc.Title = title
		doc.Name = title
		doc.Body = body
	}
	return doc
}
