package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Status prints operator-facing progress and error messages. Serial
// data itself never goes through Status, so quiet mode silences only
// these messages, not the monitored stream.
type Status struct {
	out   io.Writer
	quiet bool
	color bool
	good  lipgloss.Style
	bad   lipgloss.Style
}

// NewStatus creates a Status writing to out.
func NewStatus(out io.Writer, quiet, color bool) *Status {
	return &Status{
		out:   out,
		quiet: quiet,
		color: color,
		good:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Info prints a status message.
func (s *Status) Info(msg string) {
	s.print(msg, s.good)
}

// Error prints an error message.
func (s *Status) Error(msg string) {
	s.print(msg, s.bad)
}

// Progress prints one wait-for-device indicator, without a line break.
func (s *Status) Progress() {
	if s.quiet {
		return
	}
	fmt.Fprint(s.out, ".")
}

func (s *Status) print(msg string, style lipgloss.Style) {
	if s.quiet {
		return
	}
	if s.color && msg != "" {
		msg = style.Render(msg)
	}
	fmt.Fprintln(s.out, msg)
}
