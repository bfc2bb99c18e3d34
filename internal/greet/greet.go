// Package greet builds the greeting line shown to the user.
package greet

import (
	"fmt"

	"github.com/seabed-labs/shrimpsay/internal/logger"
)

// bufSize mirrors the fixed 256-byte buffer of the legacy formatter; one
// byte is reserved for the terminator, so a greeting never exceeds 255
// bytes.
const bufSize = 256

// Greeting formats "Hello, <name>!". Results longer than the legacy
// capacity are truncated silently and byte-wise, like snprintf into a
// fixed buffer, which can split a multi-byte rune at the cut point.
func Greeting(name string) string {
	s := fmt.Sprintf("Hello, %s!", name)
	if len(s) > bufSize-1 {
		logger.Debug("greeting truncated from %d to %d bytes", len(s), bufSize-1)
		s = s[:bufSize-1]
	}
	return s
}
