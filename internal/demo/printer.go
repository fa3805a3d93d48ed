package demo

import (
	"fmt"
	"io"

	"idioms/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes indented demo lines. Section headers are styled through a
// lipgloss renderer bound to the destination writer, so anything that is
// not a terminal receives plain text.
type Printer struct {
	w      io.Writer
	indent string
	styled bool
	header lipgloss.Style
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, out config.OutputConfig) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		indent: out.Indent,
		styled: out.Styled,
		header: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}).
			Bold(true),
	}
}

// Indent returns the line prefix.
func (p *Printer) Indent() string {
	return p.indent
}

// Writer exposes the destination for parts that print themselves.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Section starts a titled block, preceded by a blank line.
func (p *Printer) Section(title string) {
	text := "-- " + title + " --"
	if p.styled {
		text = p.header.Render(text)
	}
	fmt.Fprintf(p.w, "\n%s%s\n", p.indent, text)
}

// Line writes one indented line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", p.indent, fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}
