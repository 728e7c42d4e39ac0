// Package source enumerates the Markdown files under a path.
package source

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// ErrPath is returned when the path to enumerate does not exist or cannot be
// accessed.
var ErrPath = errors.New("invalid path")

var (
	// Extensions lists the file extensions treated as Markdown.
	Extensions = []string{".md", ".mdx", ".markdown"}

	// ExcludeDirs lists directory names that are never descended into.
	ExcludeDirs = []string{".git", "node_modules"}
)

// Open resolves path on the local filesystem. It returns a filesystem rooted
// at the directory holding the files and the root to pass to Walk: "." for a
// directory, the base name for a single file.
func Open(path string) (billy.Filesystem, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrPath, path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrPath, err)
	}

	if info.IsDir() {
		return osfs.New(abs), ".", nil
	}
	return osfs.New(filepath.Dir(abs)), filepath.Base(abs), nil
}

// IsMarkdown reports whether name has a Markdown extension.
func IsMarkdown(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// Walk yields the Markdown files under root in depth-first order, directory
// entries sorted by name. If root is itself a file it is yielded alone,
// provided it has a Markdown extension.
//
// The walk is lazy and stops as soon as the consumer stops ranging. A
// missing root yields a single error wrapping ErrPath. A directory that
// cannot be listed yields an error for that directory and the walk moves on.
func Walk(fsys billy.Filesystem, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		info, err := fsys.Stat(root)
		if err != nil {
			yield(root, fmt.Errorf("%w: %s: %w", ErrPath, root, err))
			return
		}

		if !info.IsDir() {
			if IsMarkdown(root) {
				yield(root, nil)
			}
			return
		}

		walkDir(fsys, root, yield)
	}
}

// walkDir returns false once yield asks to stop.
func walkDir(fsys billy.Filesystem, dir string, yield func(string, error) bool) bool {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return yield(dir, fmt.Errorf("read dir %s: %w", dir, err))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		name := fsys.Join(dir, entry.Name())

		if entry.IsDir() {
			if slices.Contains(ExcludeDirs, entry.Name()) {
				continue
			}
			if !walkDir(fsys, name, yield) {
				return false
			}
			continue
		}

		if IsMarkdown(name) && !yield(name, nil) {
			return false
		}
	}

	return true
}
