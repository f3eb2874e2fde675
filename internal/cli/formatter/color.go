// Package formatter renders the CLI's status and error lines. Styling is
// applied only when the destination is a terminal so piped output stays
// plain.
package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Gruvbox-inspired color palette, matching the chart's bar colors.
var (
	ColorRed = lipgloss.Color("#fb4934")
	ColorDim = lipgloss.Color("#928374")
	ColorFg  = lipgloss.Color("#ebdbb2")
)

// Predefined lipgloss styles.
var (
	StyleDim   = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold  = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleError = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
)

// Printer writes progress and error lines to one destination.
type Printer struct {
	w     io.Writer
	plain bool
}

// New returns a Printer for w. Styles are disabled unless w is an
// interactive terminal.
func New(w io.Writer) *Printer {
	return &Printer{w: w, plain: !isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Statusf prints one dimmed progress line.
func (p *Printer) Statusf(format string, args ...any) {
	p.println(StyleDim, fmt.Sprintf(format, args...))
}

// Donef prints one bold completion line.
func (p *Printer) Donef(format string, args ...any) {
	p.println(StyleBold, fmt.Sprintf(format, args...))
}

// Errorf prints one highlighted error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.println(StyleError, fmt.Sprintf(format, args...))
}

func (p *Printer) println(style lipgloss.Style, s string) {
	if !p.plain {
		s = style.Render(s)
	}
	fmt.Fprintln(p.w, s)
}
