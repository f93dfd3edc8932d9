// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Infof writes a progress note, but only to an interactive terminal.
// Redirected stderr stays limited to warnings and errors.
func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet || !IsTerminal(dst) {
		return
	}
	_, _ = fmt.Fprintf(dst, "INFO: "+format+"\n", a...)
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
