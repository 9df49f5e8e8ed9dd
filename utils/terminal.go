package utils

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to an interactive terminal.
// Cygwin and MSYS pseudo terminals on Windows count as terminals too.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
