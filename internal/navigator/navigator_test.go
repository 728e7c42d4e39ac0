package navigator

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/itsmostafa/mdtree/internal/document"
	"github.com/itsmostafa/mdtree/internal/outline"
	"github.com/itsmostafa/mdtree/internal/source"
)

// failingFS refuses to open one file.
type failingFS struct {
	billy.Filesystem
	fail string
}

func (f failingFS) Open(name string) (billy.File, error) {
	if filepath.ToSlash(name) == f.fail {
		return nil, os.ErrPermission
	}
	return f.Filesystem.Open(name)
}

func newFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for name, content := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestRunDirectory(t *testing.T) {
	fs := newFS(t, map[string]string{
		"docs/a.md":       "---\ntitle: Hello\n---\n# A\n",
		"docs/sub/b.md":   "",
		"docs/readme.txt": "# ignored\n",
		"docs/c.md":       "# Title\n## Sub\n### Leaf\n",
	})

	var buf bytes.Buffer
	err := Run(Config{Path: "docs", FS: fs, Output: &buf})
	require.NoError(t, err)

	expected := "docs/a.md\n" +
		"Hello\n" +
		"└── A\n" +
		"\n" +
		"docs/c.md\n" +
		"c.md\n" +
		"└── Title\n" +
		"    └── Sub\n" +
		"        └── Leaf\n" +
		"\n" +
		"docs/sub/b.md\n" +
		"b.md\n" +
		"\n"
	require.Equal(t, expected, buf.String())
}

func TestRunSingleFileWithLevel(t *testing.T) {
	fs := newFS(t, map[string]string{
		"guide.md": "# Guide\n## Install\n#### Linux\n## Usage\n",
	})

	var buf bytes.Buffer
	err := Run(Config{Path: "guide.md", Level: 1, FS: fs, Output: &buf})
	require.NoError(t, err)

	expected := "guide.md\n" +
		"guide.md\n" +
		"├── Install\n" +
		"│   └── []\n" +
		"│       └── Linux\n" +
		"└── Usage\n" +
		"\n"
	require.Equal(t, expected, buf.String())
}

func TestRunThematicBreakIsNotFrontmatter(t *testing.T) {
	fs := newFS(t, map[string]string{
		"hr-first.md": "---\n# A\n---\n## B\n",
	})

	var buf bytes.Buffer
	err := Run(Config{Path: "hr-first.md", FS: fs, Output: &buf})
	require.NoError(t, err)

	expected := "hr-first.md\n" +
		"hr-first.md\n" +
		"└── A\n" +
		"    └── B\n" +
		"\n"
	require.Equal(t, expected, buf.String())
}

func TestRunGoldmarkEngine(t *testing.T) {
	fs := newFS(t, map[string]string{
		"doc.md": "Title\n=====\n\n## Sub\n",
	})

	var buf bytes.Buffer
	err := Run(Config{Path: "doc.md", Engine: outline.EngineGoldmark, FS: fs, Output: &buf})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "└── Title\n    └── Sub\n")
}

func TestRunNoFiles(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("empty", 0o755))

	var buf bytes.Buffer
	err := Run(Config{Path: "empty", FS: fs, Output: &buf})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "no markdown files found in empty")
}

func TestRunMissingPath(t *testing.T) {
	var buf bytes.Buffer
	err := Run(Config{Path: "nope", FS: memfs.New(), Output: &buf})
	require.ErrorIs(t, err, source.ErrPath)
	require.Empty(t, buf.String())

	err = Run(Config{Path: filepath.Join(t.TempDir(), "missing"), Output: &buf})
	require.ErrorIs(t, err, source.ErrPath)
}

func TestRunReadErrorContinues(t *testing.T) {
	fs := failingFS{
		Filesystem: newFS(t, map[string]string{
			"docs/a.md": "# A\n",
			"docs/b.md": "# B\n",
			"docs/c.md": "# C\n",
		}),
		fail: "docs/b.md",
	}

	var buf, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	err := Run(Config{Path: "docs", FS: fs, Output: &buf, Logger: logger})

	require.ErrorIs(t, err, document.ErrRead)
	require.Contains(t, err.Error(), "1 of 3 files")
	require.Contains(t, buf.String(), "└── A\n")
	require.Contains(t, buf.String(), "└── C\n")
	require.NotContains(t, buf.String(), "└── B\n")
	require.Contains(t, logs.String(), "docs/b.md")
}

func TestRunNegativeLevel(t *testing.T) {
	err := Run(Config{Path: "docs", Level: -1, FS: memfs.New()})
	require.Error(t, err)
}

func TestRunLocalFilesystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "notes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes", "x.md"), []byte("## X\n"), 0o644))

	var buf bytes.Buffer
	err := Run(Config{Path: dir, Output: &buf})
	require.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, filepath.Join(dir, "notes", "x.md"), lines[0])
	require.Equal(t, "x.md", lines[1])
	require.Equal(t, "└── []", lines[2])
	require.Equal(t, "    └── X", lines[3])
}

func TestDisplayPath(t *testing.T) {
	require.Equal(t, "guide.md", displayPath("guide.md", "guide.md", "guide.md"))
	require.Equal(t, filepath.Join("docs", "a.md"), displayPath("docs", ".", "a.md"))
	require.Equal(t, filepath.Join("docs", "sub", "a.md"), displayPath("docs", "docs", filepath.Join("docs", "sub", "a.md")))
}
