package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// printer writes transcript lines. Write errors are ignored: the transcript is
// best-effort console output.
type printer struct {
	w       io.Writer
	heading lipgloss.Style
}

func newPrinter(w io.Writer) printer {
	r := lipgloss.NewRenderer(w)
	return printer{
		w:       w,
		heading: r.NewStyle().Bold(true),
	}
}

func (p printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p printer) raw(s string) {
	_, _ = io.WriteString(p.w, s)
}

func (p printer) title(s string) {
	p.line("%s", p.heading.Render(s))
}

// Heading writes s as a styled section title followed by a newline.
func Heading(w io.Writer, s string) {
	newPrinter(w).title(s)
}
