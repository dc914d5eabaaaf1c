package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers such as `head` close early when they have enough rows.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// IgnoreBrokenPipe maps broken-pipe errors to nil.
func IgnoreBrokenPipe(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
