package kust

import "errors"

// ErrNotConnected indicates an exchange was attempted before a
// transport exists.
var ErrNotConnected = errors.New("not connected")

// TransportError reports a failed exchange: the port could not be
// (re)opened, a write failed, or no line arrived within the fixed
// timeout. Exchanges fail with a value, they never panic past the
// transport boundary.
type TransportError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *TransportError) Error() string {
	if e.Err != nil {
		return "transport " + e.Op + ": " + e.Err.Error()
	}
	return "transport " + e.Op + ": timeout"
}

// Unwrap exposes the underlying I/O error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}
