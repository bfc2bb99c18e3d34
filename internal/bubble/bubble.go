// Package bubble renders a message inside an ASCII speech bubble with a
// fixed shrimp mascot underneath.
package bubble

import (
	"io"
	"strings"
)

// tail is the mascot below the bubble, identical for every message.
const tail = `    \
     \
      (°>)
      /|
      \|
      <>
`

// Render returns the multi-line bubble for message, each line terminated
// by a newline. The border is always two dashes wider than the message,
// so an empty message still produces a well-formed box.
func Render(message string) string {
	border := " +" + strings.Repeat("-", len(message)+2) + "+\n"

	var b strings.Builder
	b.Grow(2*len(border) + len(message) + len(tail) + 8)
	b.WriteString(border)
	b.WriteString(" | " + message + " |\n")
	b.WriteString(border)
	b.WriteString(tail)
	return b.String()
}

// Fprint writes the rendered bubble for message to w.
func Fprint(w io.Writer, message string) error {
	_, err := io.WriteString(w, Render(message))
	return err
}
