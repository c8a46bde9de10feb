package prompt

import "errors"

var (
	// ErrInputClosed is returned when the console reports end of input before
	// an acceptable response was read.
	ErrInputClosed = errors.New("prompt input closed")
	// ErrInvalidNumber is wrapped by every ParseError.
	ErrInvalidNumber = errors.New("invalid number")
	// errOutOfRange marks a parsed response outside the requested bounds.
	errOutOfRange = errors.New("value out of range")
)
