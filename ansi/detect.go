package ansi

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
)

// ShouldColorize decides once, for a given output stream, whether
// escape sequences should be emitted to it.
//
// The NO_COLOR environment variable always wins and disables color.
// FORCE_COLOR enables color even for pipes and files. Otherwise color
// is enabled iff w is an interactive terminal, determined with
// golang.org/x/term. Writers that are not *os.File (buffers, pipes
// wrapped in bufio, network connections) are never terminals.
func ShouldColorize(w io.Writer) bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return IsTerminal(w)
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Writer wraps w so that escape sequences render correctly on the
// platform. On Windows the legacy console needs sequences translated
// into console API calls; everywhere else the file is returned as is.
func Writer(w io.Writer) io.Writer {
	f, ok := w.(*os.File)
	if !ok {
		return w
	}
	return colorable.NewColorable(f)
}
