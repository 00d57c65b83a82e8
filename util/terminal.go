package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultTerminalWidth is returned by TerminalWidth when the width cannot be read
const DefaultTerminalWidth = 80

type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of the terminal behind w, or
// DefaultTerminalWidth when w is not a terminal.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(fdWriter)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultTerminalWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}

	return width
}

// StdoutIsTerminal reports whether os.Stdout is a terminal
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout)
}
