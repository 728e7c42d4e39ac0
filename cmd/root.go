package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/itsmostafa/mdtree/internal/navigator"
	"github.com/itsmostafa/mdtree/internal/outline"
	"github.com/itsmostafa/mdtree/internal/version"
	"github.com/spf13/cobra"
)

var path string
var level int
var engine string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mdtree",
	Short: "Print a tree of the headings in Markdown files",
	Long: `mdtree prints the heading outline of a Markdown file, or of every Markdown
file found under a directory, using tree-style box drawing.

A frontmatter title, when present, names the outline; otherwise the file
name does. Skipped heading levels are shown as [] so depth always matches
the heading level.`,
	Example: `  mdtree -p README.md
  mdtree -p docs -l 1`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyEnv(cmd); err != nil {
			return err
		}
		if level < 0 {
			return fmt.Errorf("invalid level %d: must be 0 or greater", level)
		}

		// Validate engine
		eng, err := outline.ParseEngine(engine)
		if err != nil {
			return err
		}

		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

		return navigator.Run(navigator.Config{
			Path:   path,
			Level:  level,
			Engine: eng,
			Output: cmd.OutOrStdout(),
			Logger: logger,
		})
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("mdtree %s\n", version.String()))

	rootCmd.Flags().StringVarP(&path, "path", "p", ".", "Relative or absolute path to a Markdown file or directory (env MDTREE_PATH)")
	rootCmd.Flags().IntVarP(&level, "level", "l", 0, "Exclude headings at and above this level; -l 1 skips H1s, -l 2 skips H1s and H2s (env MDTREE_LEVEL)")
	rootCmd.Flags().StringVarP(&engine, "engine", "e", string(outline.EngineLine), "Heading extractor to use (line, goldmark)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-file details to stderr")
}

// applyEnv fills path and level from the environment when their flags were
// not given on the command line.
func applyEnv(cmd *cobra.Command) error {
	if envPath := os.Getenv("MDTREE_PATH"); envPath != "" && !cmd.Flags().Changed("path") {
		path = envPath
	}
	if envLevel := os.Getenv("MDTREE_LEVEL"); envLevel != "" && !cmd.Flags().Changed("level") {
		n, err := strconv.Atoi(envLevel)
		if err != nil {
			return fmt.Errorf("invalid MDTREE_LEVEL %q: must be an integer", envLevel)
		}
		level = n
	}
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
