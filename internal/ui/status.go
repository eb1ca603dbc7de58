package ui

import (
	"fmt"
	"io"
)

// OK prints a success line.
func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

// Fail prints an error line.
func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}

// Hint prints a muted follow-up line.
func Hint(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Muted.Render(msg))
}
