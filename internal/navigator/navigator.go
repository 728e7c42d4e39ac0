// Package navigator prints the heading outline of every Markdown file under
// a path, one file at a time in walk order.
package navigator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/itsmostafa/mdtree/internal/document"
	"github.com/itsmostafa/mdtree/internal/outline"
	"github.com/itsmostafa/mdtree/internal/source"
)

// Config holds the navigator configuration
type Config struct {
	// Path is the file or directory to outline
	Path string
	// Level suppresses headings at or above it; 0 keeps every heading
	Level int
	// Engine selects the heading extractor
	Engine outline.Engine
	// FS overrides the local filesystem; Path is then resolved inside it
	FS billy.Filesystem
	// Output receives the outlines
	Output io.Writer
	// Logger receives per-file diagnostics
	Logger *slog.Logger
}

// Run outlines every Markdown file under cfg.Path.
//
// A path that cannot be opened fails immediately. A file that cannot be read
// is logged and skipped; once all files are done Run returns an error
// wrapping document.ErrRead so the caller can exit non-zero.
func Run(cfg Config) error {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Path == "" {
		cfg.Path = "."
	}
	if cfg.Engine == "" {
		cfg.Engine = outline.EngineLine
	}
	if cfg.Level < 0 {
		return fmt.Errorf("level must not be negative: %d", cfg.Level)
	}

	fsys, root := cfg.FS, cfg.Path
	if fsys == nil {
		var err error
		if fsys, root, err = source.Open(cfg.Path); err != nil {
			return err
		}
	}

	out := newOutput(cfg.Output)
	var processed, failed int

	for name, err := range source.Walk(fsys, root) {
		if err != nil {
			if errors.Is(err, source.ErrPath) {
				return err
			}
			failed++
			cfg.Logger.Error("skipping directory", "path", displayPath(cfg.Path, root, name), "error", err)
			continue
		}

		display := displayPath(cfg.Path, root, name)
		if err := outlineFile(cfg, out, fsys, name, display); err != nil {
			failed++
			cfg.Logger.Error("skipping file", "path", display, "error", err)
			continue
		}
		processed++
	}

	if processed == 0 && failed == 0 {
		out.FormatNotice("no markdown files found in %s", cfg.Path)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files could not be read", document.ErrRead, failed, processed+failed)
	}
	return nil
}

// outlineFile runs the load, extract, build and render steps for one file.
func outlineFile(cfg Config, out *output, fsys billy.Filesystem, name, display string) error {
	doc, err := document.Load(fsys, name)
	if err != nil {
		return err
	}

	headings := cfg.Engine.Extract(doc.Body, cfg.Level)
	tree := outline.Build(doc.Name, headings, cfg.Level)

	cfg.Logger.Debug("built outline",
		"path", display,
		"title", doc.Title,
		"headings", len(headings),
		"nodes", tree.Size(),
		"height", tree.Height(),
	)

	out.FormatPath(display)
	out.FormatOutline(tree.String())
	return nil
}

// displayPath maps a walked name back onto the path the user asked for.
func displayPath(base, root, name string) string {
	if name == root {
		return base
	}
	rel, err := filepath.Rel(root, name)
	if err != nil {
		return name
	}
	return filepath.Join(base, rel)
}
