package navigator

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// output writes outlines and notices to w. Styling is dropped when w is not
// a terminal.
type output struct {
	w io.Writer

	// pathStyle for the file path above each outline
	pathStyle lipgloss.Style

	// dimStyle for notices
	dimStyle lipgloss.Style
}

func newOutput(w io.Writer) *output {
	r := lipgloss.NewRenderer(w)
	return &output{
		w: w,
		pathStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")),
		dimStyle: r.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// FormatPath renders the header line naming the file being outlined.
func (o *output) FormatPath(path string) {
	fmt.Fprintln(o.w, o.pathStyle.Render(path))
}

// FormatOutline writes a rendered outline followed by a blank separator line.
func (o *output) FormatOutline(outline string) {
	fmt.Fprint(o.w, outline)
	fmt.Fprintln(o.w)
}

// FormatNotice renders a muted informational message.
func (o *output) FormatNotice(format string, args ...any) {
	fmt.Fprintln(o.w, o.dimStyle.Render(fmt.Sprintf(format, args...)))
}
