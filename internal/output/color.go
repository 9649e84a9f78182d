package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for annotated output.
type Styles struct {
	Timestamp lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
		Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Timestamp: lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
		Meta:      lipgloss.NewStyle(),
	}
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
