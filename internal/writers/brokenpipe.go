// internal/writers/brokenpipe.go

// Package writers holds helpers for the MSF output stream.
package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// `swmsf ... | head` closes stdout after the header; that is a clean
// exit, not a write failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
